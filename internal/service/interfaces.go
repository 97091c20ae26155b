// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

// Package service holds the vault's business logic: the master-password
// registry that gates unlocking, and the stateful vault session that owns
// all plaintext while the vault is open.
package service

import (
	"context"

	"github.com/jortega/trackvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterPasswordRegistry manages the per-account master vault record: one
// bcrypt password hash that gates unlocking. The hash is entirely separate
// from envelope key derivation: it never produces key material, and the
// encryption key is always re-derived from the master password text plus
// each envelope's own salt.
type MasterPasswordRegistry interface {
	// HasVault reports whether a master vault record exists for the account.
	// Presence decides between "create vault" and "unlock vault" modes.
	HasVault(ctx context.Context, accountID string) (bool, error)

	// GetVaultRecord returns the account's master vault record, or ErrNoVault.
	GetVaultRecord(ctx context.Context, accountID string) (models.MasterVaultRecord, error)

	// CreateVault provisions the record. Fails with ErrWeakPassword when the
	// password is shorter than 6 characters and ErrVaultAlreadyExists when a
	// record is already present (at-most-one creation).
	CreateVault(ctx context.Context, accountID, password string) (models.MasterVaultRecord, error)

	// Verify checks a candidate password against a stored bcrypt hash.
	// It never errors on mismatch, it only returns false.
	Verify(password, storedHash string) bool
}
