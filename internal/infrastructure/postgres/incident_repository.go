package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo tabla incidentes.
type IncidentRepo struct {
	q Querier
}

func NewIncidentRepository(q Querier) *IncidentRepo {
	return &IncidentRepo{q: q}
}

const incidentColumns = `id, puesto_id, reportado_por, tipo, descripcion, gravedad, fecha, estado, created_at, updated_at`

func scanIncident(row pgx.Row) (*entity.Incident, error) {
	var i entity.Incident
	var reportedBy *string
	if err := row.Scan(&i.ID, &i.PostID, &reportedBy, &i.Type, &i.Description, &i.Severity, &i.OccurredAt, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.ReportedBy = derefString(reportedBy)
	return &i, nil
}

func (r *IncidentRepo) Create(ctx context.Context, i *entity.Incident) error {
	query := `
		INSERT INTO incidentes (puesto_id, reportado_por, tipo, descripcion, gravedad, fecha, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		i.PostID, nullString(i.ReportedBy), i.Type, i.Description, i.Severity, i.OccurredAt, i.Status, i.CreatedAt, i.UpdatedAt,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

func (r *IncidentRepo) GetByID(ctx context.Context, id int64) (*entity.Incident, error) {
	i, err := scanIncident(r.q.QueryRow(ctx, `SELECT `+incidentColumns+` FROM incidentes WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return i, nil
}

func (r *IncidentRepo) Update(ctx context.Context, i *entity.Incident) error {
	query := `
		UPDATE incidentes SET tipo = $2, descripcion = $3, gravedad = $4, estado = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, i.ID, i.Type, i.Description, i.Severity, i.Status, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista incidentes, los más recientes primero.
func (r *IncidentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Incident, error) {
	rows, err := r.q.Query(ctx, `SELECT `+incidentColumns+` FROM incidentes ORDER BY fecha DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Incident
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func (r *IncidentRepo) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.q, `DELETE FROM incidentes WHERE id = $1`, id, "incident")
}
