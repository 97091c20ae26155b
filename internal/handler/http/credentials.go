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

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	var types []models.CredentialType
	for _, raw := range r.URL.Query()["type"] {
		t := models.CredentialType(raw)
		if !t.Known() {
			http.Error(w, "unknown credential type: "+raw, http.StatusBadRequest)
			return
		}
		types = append(types, t)
	}

	records, err := h.credentials.ListCredentials(r.Context(), projectID, types...)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCredentials").Str("project_id", projectID).Msg("listing credentials failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if records == nil {
		records = []models.CredentialRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// saveCredential stores an already-encrypted record. The body must carry an
// envelope, never a plaintext value; the handler checks shape only and has
// no way to inspect the ciphertext.
func (h *Handler) saveCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	projectID := chi.URLParam(r, "projectID")

	var record models.CredentialRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.saveCredential").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.ProjectID = projectID

	switch {
	case record.ID == "":
		http.Error(w, "id must not be empty", http.StatusBadRequest)
		return
	case record.Name == "":
		http.Error(w, "name must not be empty", http.StatusBadRequest)
		return
	case record.EncryptedValue == "":
		http.Error(w, "encrypted_value must not be empty", http.StatusBadRequest)
		return
	case !record.Type.Known():
		http.Error(w, "unknown credential type: "+string(record.Type), http.StatusBadRequest)
		return
	}

	if err := h.credentials.SaveCredential(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.saveCredential").Str("credential_id", record.ID).Msg("saving credential failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	credentialID := chi.URLParam(r, "credentialID")

	// The repository treats an absent id as success, so repeated deletes
	// come back 204 every time.
	if err := h.credentials.DeleteCredential(r.Context(), credentialID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCredential").Str("credential_id", credentialID).Msg("deleting credential failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
