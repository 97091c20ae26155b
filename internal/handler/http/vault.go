// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

func (h *Handler) getVaultRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, "accountID")

	record, err := h.vaultRecords.GetVaultRecord(r.Context(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVaultRecord").Str("account_id", accountID).Msg("getting vault record failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) createVaultRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID := chi.URLParam(r, "accountID")

	var record models.MasterVaultRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.createVaultRecord").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.AccountID = accountID

	if record.PasswordHash == "" {
		http.Error(w, "password_hash must not be empty", http.StatusBadRequest)
		return
	}

	if err := h.vaultRecords.CreateVaultRecord(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.createVaultRecord").Str("account_id", accountID).Msg("creating vault record failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
