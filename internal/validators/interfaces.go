// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

// Package validators enforces the syntactic rules a credential must pass
// before it is encrypted. Validation always runs on plaintext input; once a
// value is sealed into an envelope nothing about it can be checked anymore.
//
// Each credential type carries one rule (see [CredentialValidator]); the
// rule set and the type enumeration in models are kept exhaustive over the
// same values so adding a type is a single-point change.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator is the generic validation contract. Implementations may scope
// validation to specific named fields.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
