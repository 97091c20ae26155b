package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON loads the JSON config file at path into cfg. Field names follow
// the Go struct fields (the JSON file is an operator convenience; env and
// flags remain the primary sources).
func parseJSON(path string, cfg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingJSONFile, err)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingJSON, err)
	}

	return nil
}
