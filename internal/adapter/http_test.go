// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/trackvault/internal/config"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

func newTestStore(t *testing.T, serverURL string) *remoteRecordStore {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewRemoteRecordStore(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*remoteRecordStore)
}

func TestNewRemoteRecordStore_InvalidAddress(t *testing.T) {
	_, err := NewRemoteRecordStore(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)

	// A bare host:port is acceptable: the scheme is filled in.
	_, err = NewRemoteRecordStore(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
}

// ── Vault records ───────────────────────────────────────────────────────────

func TestGetVaultRecord_Success(t *testing.T) {
	want := models.MasterVaultRecord{AccountID: "acc-1", PasswordHash: "$2a$12$stub"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vault/acc-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).GetVaultRecord(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, want.AccountID, got.AccountID)
	assert.Equal(t, want.PasswordHash, got.PasswordHash)
}

func TestGetVaultRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).GetVaultRecord(context.Background(), "acc-1")

	// The store sentinel, not the transport one: callers stay agnostic.
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateVaultRecord_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("vault record already exists"))
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).CreateVaultRecord(context.Background(), models.MasterVaultRecord{AccountID: "acc-1"})

	assert.ErrorIs(t, err, store.ErrVaultRecordExists)
}

// ── Credentials ─────────────────────────────────────────────────────────────

func TestListCredentials_Success(t *testing.T) {
	want := []models.CredentialRecord{
		{ID: "cred-2", ProjectID: "proj-1", Type: models.APIKey, Name: "newer"},
		{ID: "cred-1", ProjectID: "proj-1", Type: models.GithubToken, Name: "older"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/proj-1/credentials", r.URL.Path)
		assert.Equal(t, []string{"api_key", "github_token"}, r.URL.Query()["type"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).ListCredentials(context.Background(), "proj-1", models.APIKey, models.GithubToken)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cred-2", got[0].ID)
	assert.Equal(t, "cred-1", got[1].ID)
}

func TestSaveCredential_Success(t *testing.T) {
	var received models.CredentialRecord

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/proj-1/credentials", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	record := models.CredentialRecord{
		ID:             "cred-1",
		ProjectID:      "proj-1",
		Type:           models.APIKey,
		Name:           "stripe",
		EncryptedValue: "c2FsdHNhbHRzYWx0c2FsdGl2aXZpdml2aXZpdml2Y2lwaGVydGV4dA==",
	}
	err := newTestStore(t, srv.URL).SaveCredential(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, record.EncryptedValue, received.EncryptedValue)
}

func TestDeleteCredential_NotFoundIsNoOp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/credentials/cred-404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).DeleteCredential(context.Background(), "cred-404")

	// Idempotent deletion survives the wire: a 404 is success.
	require.NoError(t, err)
}

func TestDeleteCredential_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).DeleteCredential(context.Background(), "cred-1")

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Projects ────────────────────────────────────────────────────────────────

func TestCreateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)

		var p models.Project
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "proj-new"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).CreateProject(context.Background(), models.Project{Name: "dashboard"})

	require.NoError(t, err)
	assert.Equal(t, "proj-new", got.ID)
	assert.Equal(t, "dashboard", got.Name)
}

func TestGetProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).GetProject(context.Background(), "proj-404")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProjectLinks_Success(t *testing.T) {
	want := []models.ProjectLink{{ID: "link-1", ProjectID: "proj-1", URL: "https://github.com/acme/dashboard"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/proj-1/links", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).ListProjectLinks(context.Background(), "proj-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "link-1", got[0].ID)
}
