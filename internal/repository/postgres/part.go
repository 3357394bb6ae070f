package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) Insert(ctx context.Context, part *model.Part) error {
	q := r.sb.
		Insert(tablePart).
		Columns("id", "name").
		Values(part.ID, part.Name.String())

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	q := r.sb.
		Select("id", "name").
		From(tablePart).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		part model.Part
		name string
	)
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&part.ID, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	part.Name = model.RestoreName(name)

	return &part, nil
}
