// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/mock"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

type handlerFixture struct {
	router       http.Handler
	vaultRecords *mock.MockVaultRecordRepository
	credentials  *mock.MockCredentialRepository
	projects     *mock.MockProjectRepository
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		vaultRecords: mock.NewMockVaultRecordRepository(ctrl),
		credentials:  mock.NewMockCredentialRepository(ctrl),
		projects:     mock.NewMockProjectRepository(ctrl),
	}

	h := &Handler{
		vaultRecords: f.vaultRecords,
		credentials:  f.credentials,
		projects:     f.projects,
		logger:       logger.Nop(),
	}
	f.router = h.Init()
	return f
}

func (f *handlerFixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// ── Vault records ───────────────────────────────────────────────────────────

func TestGetVaultRecord(t *testing.T) {
	f := newHandlerFixture(t)

	f.vaultRecords.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-1").
		Return(models.MasterVaultRecord{AccountID: "acc-1", PasswordHash: "$2a$12$stub"}, nil)

	rec := f.do(t, http.MethodGet, "/api/vault/acc-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.MasterVaultRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "acc-1", got.AccountID)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestGetVaultRecord_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.vaultRecords.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-404").
		Return(models.MasterVaultRecord{}, store.ErrNotFound)

	rec := f.do(t, http.MethodGet, "/api/vault/acc-404", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateVaultRecord(t *testing.T) {
	f := newHandlerFixture(t)

	f.vaultRecords.EXPECT().
		CreateVaultRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.MasterVaultRecord) error {
			// The path segment wins over whatever account id the body claims.
			assert.Equal(t, "acc-1", record.AccountID)
			return nil
		})

	body := models.MasterVaultRecord{AccountID: "spoofed", PasswordHash: "$2a$12$stub"}
	rec := f.do(t, http.MethodPost, "/api/vault/acc-1", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateVaultRecord_Conflict(t *testing.T) {
	f := newHandlerFixture(t)

	f.vaultRecords.EXPECT().
		CreateVaultRecord(gomock.Any(), gomock.Any()).
		Return(store.ErrVaultRecordExists)

	body := models.MasterVaultRecord{PasswordHash: "$2a$12$stub"}
	rec := f.do(t, http.MethodPost, "/api/vault/acc-1", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateVaultRecord_MissingHash(t *testing.T) {
	f := newHandlerFixture(t)

	// No repository expectation: the request dies at shape validation.
	rec := f.do(t, http.MethodPost, "/api/vault/acc-1", models.MasterVaultRecord{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Credentials ─────────────────────────────────────────────────────────────

func TestListCredentials(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		ListCredentials(gomock.Any(), "proj-1", models.APIKey).
		Return([]models.CredentialRecord{{ID: "cred-1", ProjectID: "proj-1", Type: models.APIKey}}, nil)

	rec := f.do(t, http.MethodGet, "/api/projects/proj-1/credentials?type=api_key", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CredentialRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "cred-1", got[0].ID)
}

func TestListCredentials_UnknownTypeFilter(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/projects/proj-1/credentials?type=nonsense", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCredentials_EmptyProjectIsEmptyArray(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		ListCredentials(gomock.Any(), "proj-1").
		Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/projects/proj-1/credentials", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSaveCredential(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		SaveCredential(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.CredentialRecord) error {
			assert.Equal(t, "proj-1", record.ProjectID)
			return nil
		})

	body := models.CredentialRecord{
		ID:             "cred-1",
		Type:           models.GithubToken,
		Name:           "deploy token",
		EncryptedValue: "c2FsdHNhbHRzYWx0c2FsdGl2aXZpdml2aXZpdml2Y2lwaGVydGV4dA==",
	}
	rec := f.do(t, http.MethodPost, "/api/projects/proj-1/credentials", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSaveCredential_BadShape(t *testing.T) {
	f := newHandlerFixture(t)

	tests := map[string]models.CredentialRecord{
		"missing id":       {Type: models.APIKey, Name: "x", EncryptedValue: "e"},
		"missing name":     {ID: "cred-1", Type: models.APIKey, EncryptedValue: "e"},
		"missing envelope": {ID: "cred-1", Type: models.APIKey, Name: "x"},
		"unknown type":     {ID: "cred-1", Type: "nonsense", Name: "x", EncryptedValue: "e"},
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/projects/proj-1/credentials", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteCredential_Idempotent(t *testing.T) {
	f := newHandlerFixture(t)

	f.credentials.EXPECT().
		DeleteCredential(gomock.Any(), "cred-1").
		Return(nil).
		Times(2)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/credentials/cred-1", nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/credentials/cred-1", nil).Code)
}

// ── Projects ────────────────────────────────────────────────────────────────

func TestCreateProject(t *testing.T) {
	f := newHandlerFixture(t)

	f.projects.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Project) (models.Project, error) {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, models.ProjectActive, p.Status)
			return p, nil
		})

	rec := f.do(t, http.MethodPost, "/api/projects", models.Project{Name: "dashboard"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "dashboard", got.Name)
	assert.NotEmpty(t, got.ID)
}

func TestCreateProject_MissingName(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/projects", models.Project{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProject_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.projects.EXPECT().
		UpdateProject(gomock.Any(), gomock.Any()).
		Return(models.Project{}, store.ErrNotFound)

	rec := f.do(t, http.MethodPut, "/api/projects/proj-404", models.Project{Name: "renamed"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProjectLink(t *testing.T) {
	f := newHandlerFixture(t)

	f.projects.EXPECT().
		AddProjectLink(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link models.ProjectLink) error {
			assert.Equal(t, "proj-1", link.ProjectID)
			assert.NotEmpty(t, link.ID)
			return nil
		})

	body := models.ProjectLink{Title: "repo", URL: "https://github.com/acme/dashboard"}
	rec := f.do(t, http.MethodPost, "/api/projects/proj-1/links", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
