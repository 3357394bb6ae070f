package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
)

func (r *repository) Create(ctx context.Context, p *model.Project) (uuid.UUID, error) {
	sqlStr, args, err := r.sb.
		Insert(tableProject).
		Columns("id", "name", "created_at").
		Values(p.ID.String(), p.Name.String(), p.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return err
		}
		return r.insertBOM(ctx, tx, p.ID, p.Parts)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return p.ID, nil
}

func (r *repository) ProjectByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	sqlStr, args, err := r.sb.
		Select("id", "name", "created_at").
		From(tableProject).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row projectRow
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&row.ID, &row.Name, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p, err := projectFromRow(row)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err = r.sb.
		Select("part_id", "quantity").
		From(tableBOM).
		Where(sq.Eq{"project_id": id.String()}).
		OrderBy("position").
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
		if err := rows.Scan(&b.PartID, &b.Quantity); err != nil {
			return nil, err
		}
		part, err := projectPartFromRow(b)
		if err != nil {
			return nil, err
		}
		p.Parts = append(p.Parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

// Update stores the project name and replaces its whole BOM in one transaction.
func (r *repository) Update(ctx context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		return errors.New("empty project id")
	}

	updSQL, updArgs, err := r.sb.
		Update(tableProject).
		Set("name", p.Name.String()).
		Where(sq.Eq{"id": p.ID.String()}).
		ToSql()
	if err != nil {
		return err
	}

	delSQL, delArgs, err := r.sb.
		Delete(tableBOM).
		Where(sq.Eq{"project_id": p.ID.String()}).
		ToSql()
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updSQL, updArgs...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrProjectNotFound
		}

		if _, err := tx.ExecContext(ctx, delSQL, delArgs...); err != nil {
			return err
		}

		return r.insertBOM(ctx, tx, p.ID, p.Parts)
	})
}

func (r *repository) insertBOM(ctx context.Context, tx *sql.Tx, projectID uuid.UUID, parts []model.ProjectPart) error {
	for i, part := range parts {
		sqlStr, args, err := r.sb.
			Insert(tableBOM).
			Columns("project_id", "part_id", "quantity", "position").
			Values(projectID.String(), part.PartID.String(), int64(part.Quantity), i).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert bom row %d: %w", i, err)
		}
	}
	return nil
}

// inTx commits when fn succeeds and rolls back otherwise.
func (r *repository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	return tx.Commit()
}
