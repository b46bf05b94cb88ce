package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo tabla turnos. hora_inicio/hora_fin son TIME y viajan como texto HH:MM.
type ShiftRepo struct {
	q Querier
}

func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, empleado_id, subpuesto_id, fecha,
	to_char(hora_inicio, 'HH24:MI'), to_char(hora_fin, 'HH24:MI'), tipo, created_at, updated_at`

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.SubPostID, &s.Date, &s.StartTime, &s.EndTime, &s.Type, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	query := `
		INSERT INTO turnos (empleado_id, subpuesto_id, fecha, hora_inicio, hora_fin, tipo, created_at, updated_at)
		VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.EmployeeID, s.SubPostID, s.Date, s.StartTime, s.EndTime, s.Type, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Invalid("subpuesto_id", "el subpuesto no existe")
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

func (r *ShiftRepo) GetByID(ctx context.Context, id int64) (*entity.Shift, error) {
	s, err := scanShift(r.q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM turnos WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) Update(ctx context.Context, s *entity.Shift) error {
	query := `
		UPDATE turnos SET empleado_id = $2, fecha = $3, hora_inicio = $4::time, hora_fin = $5::time, tipo = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.Type, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShiftRepo) List(ctx context.Context, subPostID *int64, limit, offset int) ([]*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM turnos`
	args := []any{}
	pos := 1
	if subPostID != nil {
		query += fmt.Sprintf(" WHERE subpuesto_id = $%d", pos)
		args = append(args, *subPostID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC, hora_inicio LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ShiftRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM turnos WHERE id = $1`, id, "shift")
}
