package config

import (
	"time"
)

// ClientConfig configures the vault CLI: where the hosted record store
// lives and which account/project scope the session operates on.
type ClientConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote record-store connection settings.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Vault holds the session scope and locking policy.
	Vault ClientVault `envPrefix:"VAULT_"`

	// JSONFilePath is an optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// ClientAdapter holds the HTTP connection settings for the backend.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL (scheme optional, http assumed).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientVault scopes the vault session.
type ClientVault struct {
	// AccountID identifies the end-user account owning the master vault
	// record. Env: VAULT_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// ProjectID identifies the dashboard project whose credentials the
	// session manages. Env: VAULT_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// AutoLockAfter locks an idle unlocked session after this duration.
	// Zero disables auto-locking. Env: VAULT_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`
}

// GetClientConfig loads the client configuration from all sources.
func GetClientConfig() (*ClientConfig, error) {
	return newClientBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Vault: ClientVault{
			AutoLockAfter: 5 * time.Minute,
		},
	}
}
