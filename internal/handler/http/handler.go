// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package http

import (
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/store"
)

// Handler serves the record-store REST API. It deals exclusively in
// ciphertext envelopes and bcrypt hashes: master passwords and plaintext
// secrets never reach this process, so there is nothing here to decrypt.
type Handler struct {
	vaultRecords store.VaultRecordRepository
	credentials  store.CredentialRepository
	projects     store.ProjectRepository

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		vaultRecords: storages.VaultRecords,
		credentials:  storages.Credentials,
		projects:     storages.Projects,
		logger:       logger,
	}
}
