// Package sqlite stores parts, projects and their BOMs in a SQLite database.
package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

const (
	tablePart    = "part"
	tableProject = "project"
	tableBOM     = "bom"
)

type repository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewRepository expects db to be opened with the sqlite driver and
// foreign keys enabled.
func NewRepository(db *sql.DB) *repository {
	return &repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}
