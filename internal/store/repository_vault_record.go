package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

// vaultRecordRepository is the SQL-backed implementation of
// [VaultRecordRepository] over the "vault_records" table.
type vaultRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultRecordRepository constructs a [VaultRecordRepository] backed by db.
func NewVaultRecordRepository(db *DB, logger *logger.Logger) VaultRecordRepository {
	logger.Debug().Msg("creating vault record repository")
	return &vaultRecordRepository{db: db, logger: logger}
}

// GetVaultRecord returns the master vault record for accountID, or
// [ErrNotFound] when the account has never created a vault. Presence of the
// record is what flips the UI between create-vault and unlock-vault modes.
func (r *vaultRecordRepository) GetVaultRecord(ctx context.Context, accountID string) (models.MasterVaultRecord, error) {
	log := logger.FromContext(ctx)

	var record models.MasterVaultRecord
	row := r.db.QueryRowContext(ctx, getVaultRecord, accountID)
	if err := row.Scan(&record.AccountID, &record.PasswordHash, &record.CreationSalt, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MasterVaultRecord{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "vaultRecordRepository.GetVaultRecord").
			Str("account_id", accountID).
			Msg("failed to scan vault record")
		return models.MasterVaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// CreateVaultRecord inserts the account's one master vault record.
// A unique violation on account_id maps to [ErrVaultRecordExists], which is
// how the at-most-one-record invariant surfaces to the registry.
func (r *vaultRecordRepository) CreateVaultRecord(ctx context.Context, record models.MasterVaultRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createVaultRecord,
		record.AccountID,
		record.PasswordHash,
		record.CreationSalt,
		record.CreatedAt,
	)
	if err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			return ErrVaultRecordExists
		}
		log.Err(err).
			Str("func", "vaultRecordRepository.CreateVaultRecord").
			Str("account_id", record.AccountID).
			Msg("failed to insert vault record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
