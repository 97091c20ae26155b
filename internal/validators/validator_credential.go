package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/jortega/trackvault/models"
)

const (
	FieldType  = "type"
	FieldName  = "name"
	FieldValue = "value"
)

// CredentialValidator checks plaintext credentials against the per-type
// rules of the vault. Rules run in a fixed order and the first failure wins:
//
//  1. empty or whitespace-only value
//  2. github_token: "ghp_" or "github_pat_" prefix
//  3. api_key: minimum length 10
//  4. database_url: must parse as a URL with scheme and host
//  5. private_key: must contain "-----BEGIN" and "-----END" markers
//  6. anything else: no rule beyond 1
type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DecryptedCredential:
		return v.validateCredential(ctx, value, fields...)
	case *models.DecryptedCredential:
		return v.validateCredential(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, cred models.DecryptedCredential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !cred.Type.Known() {
				return ErrUnknownCredentialType
			}
		case FieldName:
			if strings.TrimSpace(cred.Name) == "" {
				return ErrEmptyName
			}
		case FieldValue:
			if err := ValidateValue(cred.Type, cred.Value); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateValue applies the type-specific rule to a plaintext value.
// Exported separately so the UI can check input before a full add.
func ValidateValue(t models.CredentialType, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}

	switch t {
	case models.GithubToken:
		if !strings.HasPrefix(value, "ghp_") && !strings.HasPrefix(value, "github_pat_") {
			return ErrGithubTokenFormat
		}

	case models.APIKey:
		if len(value) < 10 {
			return ErrAPIKeyTooShort
		}

	case models.DatabaseURL:
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrDatabaseURLFormat
		}

	case models.PrivateKey:
		if !strings.Contains(value, "-----BEGIN") || !strings.Contains(value, "-----END") {
			return ErrPrivateKeyFormat
		}
	}

	return nil
}
