// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package service

import (
	"github.com/jortega/trackvault/internal/crypto"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/internal/validators"
)

// Services bundles the vault's business-logic layer for injection into
// handlers and the CLI.
type Services struct {
	Registry MasterPasswordRegistry
	Codec    crypto.EnvelopeCodec
}

// NewServices assembles the registry on top of the given repositories.
func NewServices(vaultRecords store.VaultRecordRepository, codec crypto.EnvelopeCodec, log *logger.Logger) *Services {
	return &Services{
		Registry: NewMasterPasswordRegistry(vaultRecords, codec, log),
		Codec:    codec,
	}
}

// NewProjectSession builds a VaultSession scoped to one account and project
// on top of the shared services.
func (s *Services) NewProjectSession(credentials store.CredentialRepository, validator validators.Validator, accountID, projectID string, log *logger.Logger) *VaultSession {
	return NewVaultSession(s.Registry, s.Codec, credentials, validator, accountID, projectID, log)
}
