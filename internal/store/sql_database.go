package store

import (
	"database/sql"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/migrations"
)

// DB wraps the stdlib connection with the driver-specific error classifier
// and the dialect name goose needs for migrations.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// ErrorClassifier translates driver-level errors into the portable
// categories the repositories care about.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
}

// Migrate applies all embedded goose migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
