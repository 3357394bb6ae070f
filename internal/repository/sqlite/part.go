package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) Insert(ctx context.Context, part *model.Part) error {
	sqlStr, args, err := r.sb.
		Insert(tablePart).
		Columns("id", "name").
		Values(part.ID.String(), part.Name.String()).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *repository) PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	sqlStr, args, err := r.sb.
		Select("id", "name").
		From(tablePart).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row partRow
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&row.ID, &row.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return partFromRow(row)
}
