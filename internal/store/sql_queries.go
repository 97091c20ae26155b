// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/jortega/trackvault/models"
)

const (
	getVaultRecord = `
		SELECT account_id, password_hash, creation_salt, created_at
		FROM vault_records
		WHERE account_id = $1;`

	createVaultRecord = `
		INSERT INTO vault_records (account_id, password_hash, creation_salt, created_at)
		VALUES ($1, $2, $3, $4);`

	saveCredential = `
		INSERT INTO credentials (
			id,
			project_id,
			credential_type,
			credential_name,
			encrypted_value,
			iv,
			description,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	deleteCredential = `
		DELETE FROM credentials
		WHERE id = $1;`

	createProject = `
		INSERT INTO projects (id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	getProject = `
		SELECT id, name, description, status, created_at, updated_at
		FROM projects
		WHERE id = $1;`

	listProjects = `
		SELECT id, name, description, status, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC;`

	updateProject = `
		UPDATE projects SET
			name        = $1,
			description = $2,
			status      = $3,
			updated_at  = $4
		WHERE id = $5;`

	deleteProject = `
		DELETE FROM projects
		WHERE id = $1;`

	addProjectLink = `
		INSERT INTO project_links (id, project_id, title, url, created_at)
		VALUES ($1, $2, $3, $4, $5);`

	listProjectLinks = `
		SELECT id, project_id, title, url, created_at
		FROM project_links
		WHERE project_id = $1
		ORDER BY created_at;`

	deleteProjectLink = `
		DELETE FROM project_links
		WHERE id = $1;`
)

// buildListCredentialsQuery assembles the credential listing for a project.
// The type filter is dynamic, so this one goes through squirrel instead of
// a constant: an empty types slice means no filter, a non-empty one becomes
// an IN clause. Ordering is always descending creation time, which is the
// order the vault presents credentials in.
func buildListCredentialsQuery(projectID string, types []models.CredentialType) (string, []any, error) {
	builder := sq.
		Select(
			"id",
			"project_id",
			"credential_type",
			"credential_name",
			"encrypted_value",
			"iv",
			"description",
			"created_at",
		).
		From("credentials").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if len(types) > 0 {
		builder = builder.Where(sq.Eq{"credential_type": types})
	}

	return builder.ToSql()
}
