package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) ViewByID(ctx context.Context, id uuid.UUID) (*model.ProjectView, error) {
	sqlStr, args, err := r.sb.
		Select("name").
		From(tableProject).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	view := model.ProjectView{ID: id, Parts: []model.ProjectPartView{}}
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&view.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	sqlStr, args, err = r.sb.
		Select("b.part_id", "COALESCE(p.name, '')", "b.quantity").
		From(tableBOM + " b").
		LeftJoin(tablePart + " p ON p.id = b.part_id").
		Where(sq.Eq{"b.project_id": id.String()}).
		OrderBy("b.position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b bomRow
		if err := rows.Scan(&b.PartID, &b.Name, &b.Quantity); err != nil {
			return nil, err
		}
		part, err := partViewFromRow(b)
		if err != nil {
			return nil, err
		}
		view.Parts = append(view.Parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &view, nil
}
