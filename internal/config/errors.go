package config

import "errors"

var (
	ErrParsingEnv      = errors.New("error parsing environment variables")
	ErrReadingJSONFile = errors.New("error reading JSON config file")
	ErrParsingJSON     = errors.New("error parsing JSON config file")
	ErrMissingValue    = errors.New("missing required config value")
	ErrInvalidValue    = errors.New("invalid config value")
)
