// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package http

import (
	"errors"
	"net/http"

	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusUnprocessableEntity,

	store.ErrNotFound:          http.StatusNotFound,
	store.ErrVaultRecordExists: http.StatusConflict,

	store.ErrBuildingQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
