// Package config loads and validates the trackvault configuration.
//
// Configuration is assembled from four sources, highest priority first:
//
//  1. command-line flags
//  2. environment variables (caarlos0/env struct tags)
//  3. an optional JSON file (pointed to by -c/-config or CONFIG)
//  4. built-in defaults
//
// Sources are merged with mergo: a field set by a higher-priority source is
// never overwritten by a lower one. The merged result is validated before
// it reaches the rest of the application.
package config
