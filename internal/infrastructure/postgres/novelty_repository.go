package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.NoveltyRepository = (*NoveltyRepo)(nil)

// NoveltyRepo tabla novedades.
type NoveltyRepo struct {
	q Querier
}

func NewNoveltyRepository(q Querier) *NoveltyRepo {
	return &NoveltyRepo{q: q}
}

const noveltyColumns = `id, empleado_id, tipo, descripcion, fecha_inicio, fecha_fin, created_at`

func scanNovelty(row pgx.Row) (*entity.Novelty, error) {
	var n entity.Novelty
	var desc *string
	if err := row.Scan(&n.ID, &n.EmployeeID, &n.Type, &desc, &n.StartDate, &n.EndDate, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Description = derefString(desc)
	return &n, nil
}

func (r *NoveltyRepo) Create(ctx context.Context, n *entity.Novelty) error {
	query := `
		INSERT INTO novedades (empleado_id, tipo, descripcion, fecha_inicio, fecha_fin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, n.EmployeeID, n.Type, nullString(n.Description), n.StartDate, n.EndDate, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert novelty: %w", err)
	}
	return nil
}

func (r *NoveltyRepo) GetByID(ctx context.Context, id int64) (*entity.Novelty, error) {
	n, err := scanNovelty(r.q.QueryRow(ctx, `SELECT `+noveltyColumns+` FROM novedades WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get novelty: %w", err)
	}
	return n, nil
}

func (r *NoveltyRepo) Update(ctx context.Context, n *entity.Novelty) error {
	cmd, err := r.q.Exec(ctx, `UPDATE novedades SET tipo = $2, descripcion = $3, fecha_fin = $4 WHERE id = $1`,
		n.ID, n.Type, nullString(n.Description), n.EndDate)
	if err != nil {
		return fmt.Errorf("update novelty: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NoveltyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Novelty, error) {
	rows, err := r.q.Query(ctx, `SELECT `+noveltyColumns+` FROM novedades ORDER BY fecha_inicio DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list novelties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Novelty
	for rows.Next() {
		n, err := scanNovelty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan novelty: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *NoveltyRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM novedades WHERE id = $1`, id, "novelty")
}
