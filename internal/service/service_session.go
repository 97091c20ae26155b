// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jortega/trackvault/internal/crypto"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/internal/validators"
	"github.com/jortega/trackvault/models"
)

// SessionStatus is the vault session's lifecycle state.
type SessionStatus int

const (
	// Locked is the initial and resting state: no master password and no
	// plaintext anywhere in memory.
	Locked SessionStatus = iota

	// Unlocked means the session holds the master password and the
	// decrypted credential set for its project.
	Unlocked
)

func (s SessionStatus) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// VaultSession is the stateful orchestrator of one project's credential
// vault. It owns the in-memory master password and decrypted set for the
// lifetime of an unlocked session; no other component retains a copy.
//
// Concurrency: one mutating operation (create/unlock/add/delete) runs at a
// time. Unlock releases the lock across its store round-trip, so a Lock can
// win the race against a slow load: every lock bumps an epoch counter, and
// unlock refuses to install plaintext gathered under a stale epoch.
type VaultSession struct {
	registry    MasterPasswordRegistry
	codec       crypto.EnvelopeCodec
	credentials store.CredentialRepository
	validator   validators.Validator
	logger      *logger.Logger

	accountID string
	projectID string

	mu             sync.Mutex
	status         SessionStatus
	epoch          uint64
	masterPassword string
	decrypted      []models.DecryptedCredential
	revealed       map[string]struct{}
	lastActivity   time.Time
}

// NewVaultSession wires a session for one account and project. All
// collaborators are injected; the session performs no lazy construction and
// holds the only reference to plaintext state.
func NewVaultSession(
	registry MasterPasswordRegistry,
	codec crypto.EnvelopeCodec,
	credentials store.CredentialRepository,
	validator validators.Validator,
	accountID, projectID string,
	logger *logger.Logger,
) *VaultSession {
	return &VaultSession{
		registry:     registry,
		codec:        codec,
		credentials:  credentials,
		validator:    validator,
		accountID:    accountID,
		projectID:    projectID,
		logger:       logger,
		status:       Locked,
		lastActivity: time.Now(),
	}
}

// Status returns the current session state.
func (s *VaultSession) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// HasVault reports whether the account already created a vault.
func (s *VaultSession) HasVault(ctx context.Context) (bool, error) {
	return s.registry.HasVault(ctx, s.accountID)
}

// CreateVault provisions the master vault record and moves the session to
// Unlocked with an empty credential set. Only valid when no record exists;
// the registry enforces the password strength gate and the at-most-one
// invariant.
func (s *VaultSession) CreateVault(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == Unlocked {
		return ErrVaultAlreadyExists
	}

	if _, err := s.registry.CreateVault(ctx, s.accountID, password); err != nil {
		return err
	}

	s.status = Unlocked
	s.masterPassword = password
	s.decrypted = make([]models.DecryptedCredential, 0)
	s.revealed = make(map[string]struct{})
	s.lastActivity = time.Now()

	return nil
}

// Unlock verifies the password, loads the project's credential records and
// decrypts them into memory. A record that fails to decrypt is logged and
// skipped; one bad envelope must not block the rest of the vault.
//
// The store round-trip runs without the session lock held. If Lock is
// called while the load is in flight, the stale plaintext is discarded and
// ErrVaultLocked is returned instead of resurrecting the session.
func (s *VaultSession) Unlock(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.status == Unlocked {
		s.mu.Unlock()
		return nil
	}
	startEpoch := s.epoch
	s.mu.Unlock()

	record, err := s.registry.GetVaultRecord(ctx, s.accountID)
	if err != nil {
		return err
	}

	if !s.registry.Verify(password, record.PasswordHash) {
		return ErrWrongPassword
	}

	stored, err := s.credentials.ListCredentials(ctx, s.projectID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	decrypted := make([]models.DecryptedCredential, 0, len(stored))
	for _, rec := range stored {
		value, decErr := s.codec.Decrypt(rec.EncryptedValue, password)
		if decErr != nil {
			// Skip-and-continue: surfaced in logs only, never to the caller.
			log.Warn().
				Err(decErr).
				Str("credential_id", rec.ID).
				Str("project_id", rec.ProjectID).
				Msg("credential failed to decrypt during unlock, skipping")
			continue
		}
		decrypted = append(decrypted, models.DecryptedCredential{
			ID:          rec.ID,
			ProjectID:   rec.ProjectID,
			Type:        rec.Type,
			Name:        rec.Name,
			Value:       value,
			Description: rec.Description,
			CreatedAt:   rec.CreatedAt,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != startEpoch {
		// Locked while we were loading: no plaintext may be installed.
		return ErrVaultLocked
	}

	s.status = Unlocked
	s.masterPassword = password
	s.decrypted = decrypted
	s.revealed = make(map[string]struct{})
	s.lastActivity = time.Now()

	return nil
}

// Lock discards the master password, the decrypted set, and the reveal
// state. Always succeeds; locking a locked session is a no-op.
func (s *VaultSession) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked()
}

// lockLocked clears session state. Caller holds s.mu.
func (s *VaultSession) lockLocked() {
	s.status = Locked
	s.epoch++
	s.masterPassword = ""
	s.decrypted = nil
	s.revealed = nil
}

// LockIfIdle locks the session when it has been unlocked and untouched for
// at least maxIdle. Returns whether a lock happened. Used by the auto-lock
// worker.
func (s *VaultSession) LockIfIdle(maxIdle time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Unlocked || maxIdle <= 0 {
		return false
	}
	if time.Since(s.lastActivity) < maxIdle {
		return false
	}

	s.lockLocked()
	return true
}

// Credentials returns a copy of the decrypted set, newest first. Returns
// nil while the session is locked.
func (s *VaultSession) Credentials() []models.DecryptedCredential {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Unlocked {
		return nil
	}

	s.lastActivity = time.Now()
	out := make([]models.DecryptedCredential, len(s.decrypted))
	copy(out, s.decrypted)
	return out
}

// AddCredential validates, encrypts and persists a new credential, then
// appends its plaintext projection to the in-memory set. A validation or
// storage failure leaves the credential set exactly as it was.
func (s *VaultSession) AddCredential(ctx context.Context, credType models.CredentialType, name, value, description string) (models.DecryptedCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Unlocked {
		return models.DecryptedCredential{}, ErrVaultLocked
	}

	plain := models.DecryptedCredential{
		ID:          uuid.NewString(),
		ProjectID:   s.projectID,
		Type:        credType,
		Name:        name,
		Value:       value,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.validator.Validate(ctx, plain); err != nil {
		return models.DecryptedCredential{}, err
	}

	envelope, iv, err := s.codec.Encrypt(value, s.masterPassword)
	if err != nil {
		return models.DecryptedCredential{}, fmt.Errorf("encrypt credential: %w", err)
	}

	record := models.CredentialRecord{
		ID:             plain.ID,
		ProjectID:      plain.ProjectID,
		Type:           plain.Type,
		Name:           plain.Name,
		EncryptedValue: envelope,
		IV:             iv,
		Description:    plain.Description,
		CreatedAt:      plain.CreatedAt,
	}

	if err = s.credentials.SaveCredential(ctx, record); err != nil {
		return models.DecryptedCredential{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	// Newest first, matching the store's descending creation order.
	s.decrypted = append([]models.DecryptedCredential{plain}, s.decrypted...)
	s.lastActivity = time.Now()

	return plain, nil
}

// DeleteCredential removes the record from the store and the in-memory
// set. Deleting an id that is already gone is a no-op.
func (s *VaultSession) DeleteCredential(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Unlocked {
		return ErrVaultLocked
	}

	if err := s.credentials.DeleteCredential(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	for i, cred := range s.decrypted {
		if cred.ID == id {
			s.decrypted = append(s.decrypted[:i], s.decrypted[i+1:]...)
			break
		}
	}
	delete(s.revealed, id)
	s.lastActivity = time.Now()

	return nil
}

// ToggleReveal flips the display-only "value shown" flag for a credential.
// Pure presentation state: it never touches persisted or decrypted data
// and is wiped on lock.
func (s *VaultSession) ToggleReveal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Unlocked {
		return
	}

	if _, ok := s.revealed[id]; ok {
		delete(s.revealed, id)
	} else {
		s.revealed[id] = struct{}{}
	}
	s.lastActivity = time.Now()
}

// Revealed reports whether the credential's value is currently shown.
func (s *VaultSession) Revealed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revealed[id]
	return ok
}
