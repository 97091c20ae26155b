package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

func (c *ServerConfig) validate() error {
	var errs error

	if c.Server.HTTPAddress == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: server address", ErrMissingValue))
	}
	if c.Storage.DB.DSN == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: database DSN", ErrMissingValue))
	}
	switch c.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		errs = errors.Join(errs, fmt.Errorf("%w: db driver %q (want pgx or sqlite3)", ErrInvalidValue, c.Storage.DB.Driver))
	}
	if c.Server.RequestTimeout < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidValue))
	}

	return errs
}

func (c *ClientConfig) validate() error {
	var errs error

	addr := strings.TrimSpace(c.Adapter.HTTPAddress)
	if addr == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: adapter address", ErrMissingValue))
	} else {
		if !strings.Contains(addr, "://") {
			addr = "http://" + addr
		}
		if u, err := url.Parse(addr); err != nil || u.Host == "" {
			errs = errors.Join(errs, fmt.Errorf("%w: adapter address %q", ErrInvalidValue, c.Adapter.HTTPAddress))
		}
	}
	if c.Vault.AutoLockAfter < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative auto-lock interval", ErrInvalidValue))
	}

	return errs
}
