// Package postgres stores parts, projects and their BOMs in PostgreSQL.
package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tablePart    = "part"
	tableProject = "project"
	tableBOM     = "bom"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// NewRepository returns a store that implements the part, project and
// project view repositories on top of one pool.
func NewRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}
