// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

// Package adapter implements the store repositories over the record-store
// REST API, so a vault session running on a workstation uses the same
// contracts as one wired straight to the database.
//
// Every payload that crosses this boundary carries ciphertext envelopes
// only. The adapter never sees a master password or a plaintext secret;
// encryption and decryption happen entirely on the caller's side.
//
// HTTP status codes are mapped by mapHTTPError onto the sentinel errors in
// errors.go and, where the store contract demands it, onto the store
// package's own sentinels, so callers classify failures with [errors.Is]
// without knowing the transport.
package adapter

import (
	"github.com/jortega/trackvault/internal/store"
)

// RecordStore is the full remote record-store surface: the three repository
// contracts the vault session and the dashboard depend on, served over HTTP.
type RecordStore interface {
	store.VaultRecordRepository
	store.CredentialRepository
	store.ProjectRepository
}
