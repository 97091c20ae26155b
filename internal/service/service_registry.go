package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jortega/trackvault/internal/crypto"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

const (
	// minMasterPasswordLen is the creation-time strength gate.
	minMasterPasswordLen = 6

	// bcryptCost is the fixed work factor for the master-password hash.
	bcryptCost = 12
)

// masterPasswordRegistry is the concrete [MasterPasswordRegistry] backed by
// a [store.VaultRecordRepository].
type masterPasswordRegistry struct {
	records store.VaultRecordRepository
	codec   crypto.EnvelopeCodec
	logger  *logger.Logger
}

// NewMasterPasswordRegistry constructs a [MasterPasswordRegistry]. The codec
// is used only as a salt source for the informational creation_salt field.
func NewMasterPasswordRegistry(records store.VaultRecordRepository, codec crypto.EnvelopeCodec, logger *logger.Logger) MasterPasswordRegistry {
	return &masterPasswordRegistry{records: records, codec: codec, logger: logger}
}

// HasVault implements [MasterPasswordRegistry].
func (r *masterPasswordRegistry) HasVault(ctx context.Context, accountID string) (bool, error) {
	_, err := r.records.GetVaultRecord(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return true, nil
}

// GetVaultRecord implements [MasterPasswordRegistry].
func (r *masterPasswordRegistry) GetVaultRecord(ctx context.Context, accountID string) (models.MasterVaultRecord, error) {
	record, err := r.records.GetVaultRecord(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.MasterVaultRecord{}, ErrNoVault
		}
		return models.MasterVaultRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return record, nil
}

// CreateVault implements [MasterPasswordRegistry]. The length gate runs
// before any hashing; the repository's unique constraint backs the
// at-most-one invariant even under concurrent creation attempts.
func (r *masterPasswordRegistry) CreateVault(ctx context.Context, accountID, password string) (models.MasterVaultRecord, error) {
	log := logger.FromContext(ctx)

	if len(password) < minMasterPasswordLen {
		return models.MasterVaultRecord{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Err(err).Str("account_id", accountID).Msg("bcrypt hashing failed")
		return models.MasterVaultRecord{}, fmt.Errorf("hash master password: %w", err)
	}

	salt, err := r.codec.GenerateSalt()
	if err != nil {
		return models.MasterVaultRecord{}, fmt.Errorf("generate creation salt: %w", err)
	}

	record := models.MasterVaultRecord{
		AccountID:    accountID,
		PasswordHash: string(hash),
		CreationSalt: base64.StdEncoding.EncodeToString(salt),
		CreatedAt:    time.Now().UTC(),
	}

	if err = r.records.CreateVaultRecord(ctx, record); err != nil {
		if errors.Is(err, store.ErrVaultRecordExists) {
			return models.MasterVaultRecord{}, ErrVaultAlreadyExists
		}
		log.Err(err).Str("account_id", accountID).Msg("persisting vault record failed")
		return models.MasterVaultRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().Str("account_id", accountID).Msg("vault created")
	return record, nil
}

// Verify implements [MasterPasswordRegistry]. bcrypt's comparison is
// constant-time over the hash; any error (mismatch, malformed hash) is a
// plain false.
func (r *masterPasswordRegistry) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
