package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

type Migrator struct {
	db         *sql.DB
	dialect    goose.Dialect
	migrations fs.FS
}

func NewMigrator(db *sql.DB, dialect goose.Dialect, migrations fs.FS) *Migrator {
	return &Migrator{
		db:         db,
		dialect:    dialect,
		migrations: migrations,
	}
}

// Up applies every pending migration and returns the versions applied.
func (m *Migrator) Up(ctx context.Context) ([]int64, error) {
	const op = "migrator.Up"

	provider, err := goose.NewProvider(m.dialect, m.db, m.migrations)
	if err != nil {
		return nil, fmt.Errorf("%s: new provider: %w", op, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applied := make([]int64, 0, len(results))
	for _, res := range results {
		applied = append(applied, res.Source.Version)
	}
	return applied, nil
}
