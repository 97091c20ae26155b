// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jortega/trackvault/internal/config"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

type remoteRecordStore struct {
	client *resty.Client
	logger *logger.Logger
}

// NewRemoteRecordStore constructs a [RecordStore] backed by the record-store
// REST API. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the resty client with the resolved
// base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewRemoteRecordStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (RecordStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &remoteRecordStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetVaultRecord implements [store.VaultRecordRepository]. It GETs
// GET /api/vault/{accountID}. A 404 maps to [store.ErrNotFound] so callers
// distinguish "no vault yet" from transport failures.
func (a *remoteRecordStore) GetVaultRecord(ctx context.Context, accountID string) (models.MasterVaultRecord, error) {
	var record models.MasterVaultRecord

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/api/vault/" + url.PathEscape(accountID))
	if err != nil {
		return models.MasterVaultRecord{}, fmt.Errorf("get vault record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.MasterVaultRecord{}, store.ErrNotFound
		}
		return models.MasterVaultRecord{}, err
	}

	return record, nil
}

// CreateVaultRecord implements [store.VaultRecordRepository]. It POSTs the
// record to POST /api/vault/{accountID}. A 409 maps to
// [store.ErrVaultRecordExists], preserving the at-most-one semantics across
// the wire.
func (a *remoteRecordStore) CreateVaultRecord(ctx context.Context, record models.MasterVaultRecord) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(record).
		Post("/api/vault/" + url.PathEscape(record.AccountID))
	if err != nil {
		return fmt.Errorf("create vault record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) {
			return store.ErrVaultRecordExists
		}
		return err
	}

	return nil
}

// SaveCredential implements [store.CredentialRepository]. It POSTs the
// encrypted record to POST /api/projects/{projectID}/credentials.
func (a *remoteRecordStore) SaveCredential(ctx context.Context, record models.CredentialRecord) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(record).
		Post("/api/projects/" + url.PathEscape(record.ProjectID) + "/credentials")
	if err != nil {
		return fmt.Errorf("save credential request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCredentials implements [store.CredentialRepository]. It GETs
// GET /api/projects/{projectID}/credentials with an optional repeated "type"
// query parameter. Ordering (descending creation time) is the server's
// responsibility and is passed through untouched.
func (a *remoteRecordStore) ListCredentials(ctx context.Context, projectID string, types ...models.CredentialType) ([]models.CredentialRecord, error) {
	query := url.Values{}
	for _, t := range types {
		query.Add("type", string(t))
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get("/api/projects/" + url.PathEscape(projectID) + "/credentials")
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.CredentialRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode credentials response: %w", err)
	}

	return records, nil
}

// DeleteCredential implements [store.CredentialRepository]. It sends
// DELETE /api/credentials/{id}. A 404 is swallowed: deletion is idempotent
// end to end, including over the wire.
func (a *remoteRecordStore) DeleteCredential(ctx context.Context, id string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete("/api/credentials/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	return nil
}

// CreateProject implements [store.ProjectRepository].
func (a *remoteRecordStore) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(project).
		SetResult(&created).
		Post("/api/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return created, nil
}

// GetProject implements [store.ProjectRepository].
func (a *remoteRecordStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&project).
		Get("/api/projects/" + url.PathEscape(id))
	if err != nil {
		return models.Project{}, fmt.Errorf("get project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Project{}, store.ErrNotFound
		}
		return models.Project{}, err
	}

	return project, nil
}

// ListProjects implements [store.ProjectRepository].
func (a *remoteRecordStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}

	return projects, nil
}

// UpdateProject implements [store.ProjectRepository].
func (a *remoteRecordStore) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var updated models.Project

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(project).
		SetResult(&updated).
		Put("/api/projects/" + url.PathEscape(project.ID))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Project{}, store.ErrNotFound
		}
		return models.Project{}, err
	}

	return updated, nil
}

// DeleteProject implements [store.ProjectRepository].
func (a *remoteRecordStore) DeleteProject(ctx context.Context, id string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete("/api/projects/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddProjectLink implements [store.ProjectRepository].
func (a *remoteRecordStore) AddProjectLink(ctx context.Context, link models.ProjectLink) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(link).
		Post("/api/projects/" + url.PathEscape(link.ProjectID) + "/links")
	if err != nil {
		return fmt.Errorf("add project link request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListProjectLinks implements [store.ProjectRepository].
func (a *remoteRecordStore) ListProjectLinks(ctx context.Context, projectID string) ([]models.ProjectLink, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/projects/" + url.PathEscape(projectID) + "/links")
	if err != nil {
		return nil, fmt.Errorf("list project links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var links []models.ProjectLink
	if err = json.Unmarshal(resp.Body(), &links); err != nil {
		return nil, fmt.Errorf("decode project links response: %w", err)
	}

	return links, nil
}

// DeleteProjectLink implements [store.ProjectRepository].
func (a *remoteRecordStore) DeleteProjectLink(ctx context.Context, id string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete("/api/links/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete project link request: %w", err)
	}

	return mapHTTPError(resp)
}
