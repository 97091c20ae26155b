package service

import "errors"

var (
	// ErrWeakPassword rejects master passwords shorter than 6 characters at
	// vault creation.
	ErrWeakPassword = errors.New("master password must be at least 6 characters")

	// ErrVaultAlreadyExists rejects a second CreateVault for an account.
	ErrVaultAlreadyExists = errors.New("vault already exists for this account")

	// ErrNoVault reports an unlock attempt before any vault was created.
	ErrNoVault = errors.New("no vault exists for this account")

	// ErrWrongPassword reports a failed master-password verification.
	ErrWrongPassword = errors.New("wrong master password")

	// ErrVaultLocked reports an operation that requires an unlocked session.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrStorage wraps record-store failures. The triggering operation is
	// aborted; session state is left exactly as it was.
	ErrStorage = errors.New("storage operation failed")
)
