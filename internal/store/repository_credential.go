package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository] over the "credentials" table. Only envelopes cross
// this layer; nothing here can decrypt anything.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{db: db, logger: logger}
}

// SaveCredential inserts one credential record.
func (r *credentialRepository) SaveCredential(ctx context.Context, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	description := sql.NullString{String: record.Description, Valid: record.Description != ""}

	_, err := r.db.ExecContext(ctx, saveCredential,
		record.ID,
		record.ProjectID,
		string(record.Type),
		record.Name,
		record.EncryptedValue,
		record.IV,
		description,
		record.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Str("credential_id", record.ID).
			Str("project_id", record.ProjectID).
			Msg("failed to insert credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListCredentials returns the project's records newest-first, optionally
// filtered by credential type.
func (r *credentialRepository) ListCredentials(ctx context.Context, projectID string, types ...models.CredentialType) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(projectID, types)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListCredentials").
			Str("project_id", projectID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListCredentials").
			Str("project_id", projectID).
			Msg("failed to execute credential listing")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CredentialRecord, 0, 16)
	for rows.Next() {
		var (
			record      models.CredentialRecord
			description sql.NullString
		)
		if err = rows.Scan(
			&record.ID,
			&record.ProjectID,
			&record.Type,
			&record.Name,
			&record.EncryptedValue,
			&record.IV,
			&description,
			&record.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "credentialRepository.ListCredentials").
				Str("project_id", projectID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		record.Description = description.String

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.ListCredentials").
			Str("project_id", projectID).
			Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// DeleteCredential removes the record with the given id. Zero affected rows
// is not an error: delete is idempotent by contract.
func (r *credentialRepository) DeleteCredential(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteCredential, id); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Str("credential_id", id).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
