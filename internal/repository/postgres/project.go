package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) Create(ctx context.Context, p *model.Project) (uuid.UUID, error) {
	q := r.sb.
		Insert(tableProject).
		Columns("id", "name", "created_at").
		Values(p.ID, p.Name.String(), p.CreatedAt).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var projectID uuid.UUID
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&projectID); err != nil {
			return err
		}
		return r.insertBOM(ctx, tx, p.ID, p.Parts)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return projectID, nil
}

func (r *repository) ProjectByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	q := r.sb.
		Select("id", "name", "created_at").
		From(tableProject).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		p    model.Project
		name string
	)
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Name = model.RestoreName(name)

	bomQ := r.sb.
		Select("part_id", "quantity").
		From(tableBOM).
		Where(sq.Eq{"project_id": id}).
		OrderBy("position")

	sqlStr, args, err = bomQ.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Parts = []model.ProjectPart{}
	for rows.Next() {
		var (
			part     model.ProjectPart
			quantity int64
		)
		if err := rows.Scan(&part.PartID, &quantity); err != nil {
			return nil, err
		}
		part.Quantity = uint32(quantity)
		p.Parts = append(p.Parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Update stores the project name and replaces its whole BOM in one transaction.
func (r *repository) Update(ctx context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		return errors.New("empty project id")
	}

	updQ := r.sb.
		Update(tableProject).
		Set("name", p.Name.String()).
		Where(sq.Eq{"id": p.ID})

	updSQL, updArgs, err := updQ.ToSql()
	if err != nil {
		return err
	}

	delSQL, delArgs, err := r.sb.
		Delete(tableBOM).
		Where(sq.Eq{"project_id": p.ID}).
		ToSql()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updSQL, updArgs...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrProjectNotFound
		}

		if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
			return err
		}

		return r.insertBOM(ctx, tx, p.ID, p.Parts)
	})
}

func (r *repository) insertBOM(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, parts []model.ProjectPart) error {
	for i, part := range parts {
		sqlStr, args, err := r.sb.
			Insert(tableBOM).
			Columns("project_id", "part_id", "quantity", "position").
			Values(projectID, part.PartID, int64(part.Quantity), i).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert bom row %d: %w", i, err)
		}
	}
	return nil
}
