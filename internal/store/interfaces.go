// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

// Package store defines the record-store contracts the vault session and
// the dashboard depend on, plus their SQL implementations. The vault session
// never talks to a database directly: it receives these interfaces injected
// at construction, so the same session code runs against Postgres, SQLite,
// or the remote HTTP adapter.
package store

import (
	"context"

	"github.com/jortega/trackvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRecordRepository persists the per-account master vault record.
// The record gates unlocking; it never holds key material.
type VaultRecordRepository interface {
	// GetVaultRecord returns the account's master vault record, or
	// ErrNotFound when the account has not created a vault yet.
	GetVaultRecord(ctx context.Context, accountID string) (models.MasterVaultRecord, error)

	// CreateVaultRecord inserts the record for an account. Returns
	// ErrVaultRecordExists when one is already present.
	CreateVaultRecord(ctx context.Context, record models.MasterVaultRecord) error
}

// CredentialRepository persists encrypted credential envelopes. Values
// cross this boundary only in encrypted form.
type CredentialRepository interface {
	// SaveCredential inserts a new credential record.
	SaveCredential(ctx context.Context, record models.CredentialRecord) error

	// ListCredentials returns the project's credential records ordered by
	// descending creation time, optionally narrowed to the given types.
	ListCredentials(ctx context.Context, projectID string, types ...models.CredentialType) ([]models.CredentialRecord, error)

	// DeleteCredential removes a credential by id. Deleting an absent id is
	// a no-op, not an error.
	DeleteCredential(ctx context.Context, id string) error
}

// ProjectRepository persists dashboard projects and their links.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	AddProjectLink(ctx context.Context, link models.ProjectLink) error
	ListProjectLinks(ctx context.Context, projectID string) ([]models.ProjectLink, error)
	DeleteProjectLink(ctx context.Context, id string) error
}
