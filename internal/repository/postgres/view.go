package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) ViewByID(ctx context.Context, id uuid.UUID) (*model.ProjectView, error) {
	projectQ := r.sb.
		Select("id", "name").
		From(tableProject).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := projectQ.ToSql()
	if err != nil {
		return nil, err
	}

	var view model.ProjectView
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&view.ID, &view.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	bomQ := r.sb.
		Select("b.part_id", "COALESCE(p.name, '')", "b.quantity").
		From(tableBOM + " b").
		LeftJoin(tablePart + " p ON p.id = b.part_id").
		Where(sq.Eq{"b.project_id": id}).
		OrderBy("b.position")

	sqlStr, args, err = bomQ.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	view.Parts = []model.ProjectPartView{}
	for rows.Next() {
		var (
			part     model.ProjectPartView
			quantity int64
		)
		if err := rows.Scan(&part.PartID, &part.Name, &quantity); err != nil {
			return nil, err
		}
		part.Quantity = uint32(quantity)
		view.Parts = append(view.Parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &view, nil
}
