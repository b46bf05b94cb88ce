package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo tabla salarios (valor NUMERIC).
type SalaryRepo struct {
	q Querier
}

func NewSalaryRepository(q Querier) *SalaryRepo {
	return &SalaryRepo{q: q}
}

const salaryColumns = `id, nombre, valor, vigencia, created_at, updated_at`

func scanSalary(row pgx.Row) (*entity.Salary, error) {
	var s entity.Salary
	if err := row.Scan(&s.ID, &s.Name, &s.Amount, &s.Year, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalaryRepo) Create(ctx context.Context, s *entity.Salary) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO salarios (nombre, valor, vigencia, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Name, s.Amount, s.Year, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

func (r *SalaryRepo) GetByID(ctx context.Context, id int64) (*entity.Salary, error) {
	s, err := scanSalary(r.q.QueryRow(ctx, `SELECT `+salaryColumns+` FROM salarios WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary: %w", err)
	}
	return s, nil
}

func (r *SalaryRepo) Update(ctx context.Context, s *entity.Salary) error {
	cmd, err := r.q.Exec(ctx, `UPDATE salarios SET nombre = $2, valor = $3, vigencia = $4, updated_at = $5 WHERE id = $1`,
		s.ID, s.Name, s.Amount, s.Year, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update salary: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista escalas, la vigencia más reciente primero.
func (r *SalaryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Salary, error) {
	rows, err := r.q.Query(ctx, `SELECT `+salaryColumns+` FROM salarios ORDER BY vigencia DESC, nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SalaryRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM salarios WHERE id = $1`, id, "salary")
}
