// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package models

// CredentialType identifies the kind of secret stored in a
// CredentialRecord. The value determines which syntactic validation rule
// applies before encryption and which display metadata the UI shows.
type CredentialType string

const (
	// GithubToken is a GitHub personal access token
	// ("ghp_..." or "github_pat_..." prefixed).
	GithubToken CredentialType = "github_token"

	// APIKey is a generic API key for a third-party service.
	APIKey CredentialType = "api_key"

	// AnonPublic is a publishable/anonymous public key
	// (e.g. a Supabase anon key). Stored encrypted regardless.
	AnonPublic CredentialType = "anon_public"

	// PrivateKey is a PEM-framed private key
	// (must carry BEGIN/END markers).
	PrivateKey CredentialType = "private_key"

	// DatabaseURL is a database connection string and must parse as a URL.
	DatabaseURL CredentialType = "database_url"

	// SecretKey is a generic symmetric secret.
	SecretKey CredentialType = "secret_key"

	// AccessToken is an OAuth-style access token.
	AccessToken CredentialType = "access_token"

	// Other is the catch-all type with no format rule beyond non-emptiness.
	Other CredentialType = "other"
)

// AllCredentialTypes lists every supported credential type in display order.
var AllCredentialTypes = []CredentialType{
	GithubToken,
	APIKey,
	AnonPublic,
	PrivateKey,
	DatabaseURL,
	SecretKey,
	AccessToken,
	Other,
}

// Known reports whether t is one of the fixed enumeration values.
func (t CredentialType) Known() bool {
	switch t {
	case GithubToken, APIKey, AnonPublic, PrivateKey, DatabaseURL, SecretKey, AccessToken, Other:
		return true
	}
	return false
}

// Label returns the human-readable name of the credential type.
// The switch is exhaustive over the enumeration: adding a type without a
// label is a compile-visible single-point change next to the validator.
func (t CredentialType) Label() string {
	switch t {
	case GithubToken:
		return "GitHub Token"
	case APIKey:
		return "API Key"
	case AnonPublic:
		return "Anon Public Key"
	case PrivateKey:
		return "Private Key"
	case DatabaseURL:
		return "Database URL"
	case SecretKey:
		return "Secret Key"
	case AccessToken:
		return "Access Token"
	case Other:
		return "Other"
	}
	return string(t)
}

// Icon returns the glyph the dashboard shows next to the credential type.
func (t CredentialType) Icon() rune {
	switch t {
	case GithubToken:
		return '🐙'
	case APIKey:
		return '🔑'
	case AnonPublic:
		return '🌐'
	case PrivateKey:
		return '🔐'
	case DatabaseURL:
		return '🗄'
	case SecretKey:
		return '🗝'
	case AccessToken:
		return '🎫'
	case Other:
		return '📦'
	}
	return '📦'
}
