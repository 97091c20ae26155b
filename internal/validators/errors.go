package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the umbrella for every rule failure in this package;
// callers classify with errors.Is(err, ErrValidation) and surface the
// wrapped reason to the user.
var ErrValidation = errors.New("credential validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownCredentialType = fmt.Errorf("%w: unknown credential type", ErrValidation)
	ErrEmptyName             = fmt.Errorf("%w: credential name is required", ErrValidation)
	ErrEmptyValue            = fmt.Errorf("%w: credential value cannot be empty", ErrValidation)
	ErrGithubTokenFormat     = fmt.Errorf(`%w: GitHub token must start with "ghp_" or "github_pat_"`, ErrValidation)
	ErrAPIKeyTooShort        = fmt.Errorf("%w: API key must be at least 10 characters", ErrValidation)
	ErrDatabaseURLFormat     = fmt.Errorf("%w: database URL must be a well-formed URL", ErrValidation)
	ErrPrivateKeyFormat      = fmt.Errorf("%w: private key must include BEGIN and END markers", ErrValidation)
)
