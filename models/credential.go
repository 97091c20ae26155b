// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package models

import "time"

// MasterVaultRecord is the single per-account row that gates the vault.
// Presence of the record switches the UI between "create vault" and
// "unlock vault" modes. It is created once and never mutated; there is no
// password-change flow.
type MasterVaultRecord struct {
	// AccountID is the opaque identifier of the owning account.
	AccountID string `json:"account_id"`

	// PasswordHash is the bcrypt hash of the master password. It gates
	// unlocking only and is never used to derive an encryption key.
	PasswordHash string `json:"password_hash"`

	// CreationSalt is a random value captured at vault creation.
	// Informational: decryption never reads it, because every envelope
	// embeds its own PBKDF2 salt.
	CreationSalt string `json:"creation_salt"`

	// CreatedAt is the timestamp of vault setup.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing MasterVaultRecord.
func (MasterVaultRecord) TableName() string { return "vault_records" }

// CredentialRecord is the persisted form of one secret. EncryptedValue is
// never stored or transmitted decrypted.
type CredentialRecord struct {
	// ID is the opaque unique identifier of the record (UUID).
	ID string `json:"id"`

	// ProjectID scopes the credential to one dashboard project.
	ProjectID string `json:"project_id"`

	// Type is one of the fixed CredentialType enumeration values.
	Type CredentialType `json:"credential_type"`

	// Name is the user-chosen display name ("Prod Key", "CI token", ...).
	Name string `json:"credential_name"`

	// EncryptedValue is the opaque envelope: base64(salt || iv || ciphertext).
	EncryptedValue string `json:"encrypted_value"`

	// IV is the base64 initialization vector of the envelope. Informational:
	// the IV is also embedded in EncryptedValue and decryption reads it from
	// there.
	IV string `json:"iv"`

	// Description is an optional free-form note. Not sensitive.
	Description string `json:"description,omitempty"`

	// CreatedAt orders credentials in the vault view (newest first).
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table backing CredentialRecord.
func (CredentialRecord) TableName() string { return "credentials" }

// DecryptedCredential is the memory-only plaintext projection of a
// CredentialRecord. It exists only while the vault session is unlocked and
// must be discarded on lock. Never persisted, never serialized to JSON.
type DecryptedCredential struct {
	ID          string
	ProjectID   string
	Type        CredentialType
	Name        string
	Value       string
	Description string
	CreatedAt   time.Time
}
