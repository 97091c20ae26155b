package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// builder accumulates partial configs from each source and merges them in
// order. mergo only fills fields that are still zero, so the first source
// appended wins; sources are therefore pushed from the highest-priority
// (flags) down, and defaults are merged last inside build.
type builder[T any] struct {
	configs []*T
	err     error

	defaults   func() *T
	parseFlags func() *T
	jsonPath   func(*T) string
	validate   func(*T) error
}

func newServerBuilder() *builder[ServerConfig] {
	return &builder[ServerConfig]{
		configs:    make([]*ServerConfig, 0, 4),
		defaults:   serverDefaults,
		parseFlags: parseServerFlags,
		jsonPath:   func(c *ServerConfig) string { return c.JSONFilePath },
		validate:   (*ServerConfig).validate,
	}
}

func newClientBuilder() *builder[ClientConfig] {
	return &builder[ClientConfig]{
		configs:    make([]*ClientConfig, 0, 4),
		defaults:   clientDefaults,
		parseFlags: parseClientFlags,
		jsonPath:   func(c *ClientConfig) string { return c.JSONFilePath },
		validate:   (*ClientConfig).validate,
	}
}

func (b *builder[T]) build() (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range append(b.configs, b.defaults()) {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, b.validate(config)
}

func (b *builder[T]) withFlags() *builder[T] {
	b.configs = append(b.configs, b.parseFlags())
	return b
}

func (b *builder[T]) withEnv() *builder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *builder[T]) withJSON() *builder[T] {
	var jsonPath string
	for _, cfg := range b.configs {
		if p := b.jsonPath(cfg); p != "" {
			jsonPath = p
		}
	}

	if jsonPath != "" {
		jsonCfg := new(T)
		if err := parseJSON(jsonPath, jsonCfg); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
