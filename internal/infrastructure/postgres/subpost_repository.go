package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.SubPostRepository = (*SubPostRepo)(nil)

// SubPostRepo tablas subpuestos_trabajo y asignacion_guardas_puesto.
type SubPostRepo struct {
	q Querier
}

// NewSubPostRepository construye el adaptador.
func NewSubPostRepository(q Querier) *SubPostRepo {
	return &SubPostRepo{q: q}
}

const subPostColumns = `id, puesto_id, nombre, guardas_requeridos, activo, created_at, updated_at`

func scanSubPost(row pgx.Row) (*entity.SubPost, error) {
	var s entity.SubPost
	if err := row.Scan(&s.ID, &s.PostID, &s.Name, &s.RequiredGuards, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubPostRepo) Create(ctx context.Context, s *entity.SubPost) error {
	query := `
		INSERT INTO subpuestos_trabajo (puesto_id, nombre, guardas_requeridos, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.PostID, s.Name, s.RequiredGuards, s.Active, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert subpost: %w", err)
	}
	return nil
}

func (r *SubPostRepo) GetByID(ctx context.Context, id int64) (*entity.SubPost, error) {
	s, err := scanSubPost(r.q.QueryRow(ctx, `SELECT `+subPostColumns+` FROM subpuestos_trabajo WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subpost: %w", err)
	}
	return s, nil
}

func (r *SubPostRepo) Update(ctx context.Context, s *entity.SubPost) error {
	query := `
		UPDATE subpuestos_trabajo SET nombre = $2, guardas_requeridos = $3, activo = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.Name, s.RequiredGuards, s.Active, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update subpost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubPostRepo) List(ctx context.Context, limit, offset int) ([]*entity.SubPost, error) {
	rows, err := r.q.Query(ctx, `SELECT `+subPostColumns+` FROM subpuestos_trabajo ORDER BY puesto_id, nombre LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subposts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubPost
	for rows.Next() {
		s, err := scanSubPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subpost: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SubPostRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM subpuestos_trabajo WHERE id = $1`, id, "subpost")
}

// CreateAssignment inserta una asignación activa.
func (r *SubPostRepo) CreateAssignment(ctx context.Context, a *entity.GuardAssignment) error {
	query := `
		INSERT INTO asignacion_guardas_puesto (subpuesto_id, empleado_id, fecha_inicio, fecha_fin, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.SubPostID, a.EmployeeID, a.StartDate, a.EndDate, a.Active, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el guarda ya está asignado", domain.ErrConflict)
		}
		return fmt.Errorf("insert guard assignment: %w", err)
	}
	return nil
}

func (r *SubPostRepo) ListAssignments(ctx context.Context, subPostID int64, activeOnly bool) ([]*entity.GuardAssignment, error) {
	query := `
		SELECT id, subpuesto_id, empleado_id, fecha_inicio, fecha_fin, activo, created_at
		FROM asignacion_guardas_puesto WHERE subpuesto_id = $1`
	if activeOnly {
		query += ` AND activo`
	}
	query += ` ORDER BY fecha_inicio DESC`
	rows, err := r.q.Query(ctx, query, subPostID)
	if err != nil {
		return nil, fmt.Errorf("list guard assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.GuardAssignment
	for rows.Next() {
		var a entity.GuardAssignment
		if err := rows.Scan(&a.ID, &a.SubPostID, &a.EmployeeID, &a.StartDate, &a.EndDate, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan guard assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// EndAssignment desactiva la asignación y fija su fecha de fin.
func (r *SubPostRepo) EndAssignment(ctx context.Context, assignmentID int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE asignacion_guardas_puesto SET activo = false, fecha_fin = now() WHERE id = $1 AND activo`,
		assignmentID)
	if err != nil {
		return fmt.Errorf("end guard assignment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
