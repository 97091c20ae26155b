package store

import (
	"context"
	"fmt"

	"github.com/jortega/trackvault/internal/config"
	"github.com/jortega/trackvault/internal/logger"
)

// Storages bundles every repository of the record store behind one value
// handed to the service and handler layers. The DB handle is owned by the
// caller of NewStorages, never reached for lazily (see the design note on
// avoiding a global store singleton).
type Storages struct {
	VaultRecords VaultRecordRepository
	Credentials  CredentialRepository
	Projects     ProjectRepository

	db *DB
}

// NewStorages connects to the configured database, runs migrations, and
// wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Storages{
		VaultRecords: NewVaultRecordRepository(db, log),
		Credentials:  NewCredentialRepository(db, log),
		Projects:     NewProjectRepository(db, log),
		db:           db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
