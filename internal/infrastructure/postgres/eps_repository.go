package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.EPSRepository = (*EPSRepo)(nil)

// EPSRepo tabla eps.
type EPSRepo struct {
	q Querier
}

func NewEPSRepository(q Querier) *EPSRepo {
	return &EPSRepo{q: q}
}

func scanEPS(row pgx.Row) (*entity.EPS, error) {
	var e entity.EPS
	if err := row.Scan(&e.ID, &e.Name, &e.Code, &e.Active, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EPSRepo) Create(ctx context.Context, e *entity.EPS) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO eps (nombre, codigo, activo, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		e.Name, e.Code, e.Active, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert eps: %w", err)
	}
	return nil
}

func (r *EPSRepo) GetByID(ctx context.Context, id int64) (*entity.EPS, error) {
	e, err := scanEPS(r.q.QueryRow(ctx, `SELECT id, nombre, codigo, activo, created_at FROM eps WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get eps: %w", err)
	}
	return e, nil
}

func (r *EPSRepo) Update(ctx context.Context, e *entity.EPS) error {
	cmd, err := r.q.Exec(ctx, `UPDATE eps SET nombre = $2, codigo = $3, activo = $4 WHERE id = $1`,
		e.ID, e.Name, e.Code, e.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update eps: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EPSRepo) List(ctx context.Context, limit, offset int) ([]*entity.EPS, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, codigo, activo, created_at FROM eps ORDER BY nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eps: %w", err)
	}
	defer rows.Close()
	var list []*entity.EPS
	for rows.Next() {
		e, err := scanEPS(rows)
		if err != nil {
			return nil, fmt.Errorf("scan eps: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EPSRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM eps WHERE id = $1`, id, "eps")
}
