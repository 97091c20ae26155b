package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/trackvault/models"
)

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		credT   models.CredentialType
		value   string
		wantErr error
	}{
		{name: "empty value fails first for any type", credT: models.GithubToken, value: "", wantErr: ErrEmptyValue},
		{name: "whitespace-only value fails", credT: models.Other, value: "   \t\n", wantErr: ErrEmptyValue},

		{name: "github token with ghp_ prefix", credT: models.GithubToken, value: "ghp_abc123"},
		{name: "github token with github_pat_ prefix", credT: models.GithubToken, value: "github_pat_xyz"},
		{name: "github token with wrong prefix", credT: models.GithubToken, value: "xyz", wantErr: ErrGithubTokenFormat},

		{name: "api key of 10 chars", credT: models.APIKey, value: "1234567890"},
		{name: "api key too short", credT: models.APIKey, value: "short", wantErr: ErrAPIKeyTooShort},

		{name: "database url well formed", credT: models.DatabaseURL, value: "https://x.supabase.co"},
		{name: "database url postgres scheme", credT: models.DatabaseURL, value: "postgres://u:p@host:5432/db"},
		{name: "database url free text", credT: models.DatabaseURL, value: "not a url", wantErr: ErrDatabaseURLFormat},
		{name: "database url missing host", credT: models.DatabaseURL, value: "justaword", wantErr: ErrDatabaseURLFormat},

		{name: "private key with markers", credT: models.PrivateKey, value: "-----BEGIN KEY-----\n...\n-----END KEY-----"},
		{name: "private key missing end marker", credT: models.PrivateKey, value: "-----BEGIN KEY-----", wantErr: ErrPrivateKeyFormat},

		{name: "anon public has no format rule", credT: models.AnonPublic, value: "eyJhbGciOi"},
		{name: "secret key has no format rule", credT: models.SecretKey, value: "s"},
		{name: "access token has no format rule", credT: models.AccessToken, value: "t"},
		{name: "other has no format rule", credT: models.Other, value: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.credT, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation, "rule errors must wrap ErrValidation")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCredentialValidator_Validate(t *testing.T) {
	v := NewCredentialValidator()
	ctx := context.Background()

	t.Run("full credential passes", func(t *testing.T) {
		err := v.Validate(ctx, models.DecryptedCredential{
			Type:  models.APIKey,
			Name:  "Prod Key",
			Value: "sk_live_1234567890",
		})
		require.NoError(t, err)
	})

	t.Run("pointer input accepted", func(t *testing.T) {
		err := v.Validate(ctx, &models.DecryptedCredential{
			Type:  models.Other,
			Name:  "misc",
			Value: "v",
		})
		require.NoError(t, err)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.DecryptedCredential{
			Type:  models.CredentialType("ssh_key"),
			Name:  "n",
			Value: "v",
		})
		require.ErrorIs(t, err, ErrUnknownCredentialType)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.DecryptedCredential{
			Type:  models.Other,
			Name:  "  ",
			Value: "v",
		})
		require.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("field scoping skips other rules", func(t *testing.T) {
		// Only the value field is requested: the empty name is not checked.
		err := v.Validate(ctx, models.DecryptedCredential{
			Type:  models.Other,
			Value: "v",
		}, FieldValue)
		require.NoError(t, err)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		err := v.Validate(ctx, models.DecryptedCredential{}, "nope")
		require.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("unsupported object rejected", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})
}
