package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var (
	_ repository.RoundRepository      = (*RoundRepo)(nil)
	_ repository.CheckpointRepository = (*CheckpointRepo)(nil)
)

// RoundRepo rondas_definicion sobre PostgreSQL.
type RoundRepo struct {
	q Querier
}

// NewRoundRepository construye el adaptador.
func NewRoundRepository(q Querier) *RoundRepo {
	return &RoundRepo{q: q}
}

const roundColumns = `id, nombre, subpuesto_id, descripcion, activa, created_at, updated_at`

func scanRound(row pgx.Row) (*entity.RoundDefinition, error) {
	var r entity.RoundDefinition
	var desc *string
	if err := row.Scan(&r.ID, &r.Name, &r.SubPostID, &desc, &r.Active, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Description = derefString(desc)
	return &r, nil
}

func (r *RoundRepo) Create(ctx context.Context, round *entity.RoundDefinition) error {
	query := `
		INSERT INTO rondas_definicion (nombre, subpuesto_id, descripcion, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		round.Name, round.SubPostID, nullString(round.Description), round.Active, round.CreatedAt, round.UpdatedAt,
	).Scan(&round.ID)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

func (r *RoundRepo) GetByID(ctx context.Context, id int64) (*entity.RoundDefinition, error) {
	round, err := scanRound(r.q.QueryRow(ctx, `SELECT `+roundColumns+` FROM rondas_definicion WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get round: %w", err)
	}
	return round, nil
}

func (r *RoundRepo) Update(ctx context.Context, round *entity.RoundDefinition) error {
	query := `
		UPDATE rondas_definicion SET nombre = $2, subpuesto_id = $3, descripcion = $4, activa = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		round.ID, round.Name, round.SubPostID, nullString(round.Description), round.Active, round.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update round: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RoundRepo) List(ctx context.Context, limit, offset int) ([]*entity.RoundDefinition, error) {
	rows, err := r.q.Query(ctx, `SELECT `+roundColumns+` FROM rondas_definicion ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoundDefinition
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		list = append(list, round)
	}
	return list, rows.Err()
}

func (r *RoundRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM rondas_definicion WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la ronda tiene puntos o ejecuciones", domain.ErrConflict)
		}
		return fmt.Errorf("delete round: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountExecutions cuenta las ejecuciones registradas de la ronda.
func (r *RoundRepo) CountExecutions(ctx context.Context, roundID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM rondas_ejecucion WHERE ronda_id = $1`, roundID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count round executions: %w", err)
	}
	return n, nil
}

// CheckpointRepo rondas_puntos sobre PostgreSQL. La tabla tiene UNIQUE (ronda_id, orden).
type CheckpointRepo struct {
	q Querier
}

// NewCheckpointRepository construye el adaptador.
func NewCheckpointRepository(q Querier) *CheckpointRepo {
	return &CheckpointRepo{q: q}
}

const checkpointColumns = `id, ronda_id, orden, nombre, latitud, longitud, radio_metros, codigo_qr, created_at`

func scanCheckpoint(row pgx.Row) (*entity.RoundCheckpoint, error) {
	var cp entity.RoundCheckpoint
	var qr *string
	if err := row.Scan(&cp.ID, &cp.RoundID, &cp.Order, &cp.Name, &cp.Latitude, &cp.Longitude, &cp.RadiusM, &qr, &cp.CreatedAt); err != nil {
		return nil, err
	}
	cp.QRCode = derefString(qr)
	return &cp, nil
}

// Create inserta el punto. Una colisión de (ronda_id, orden) que se cuele entre la
// verificación y el insert llega como unique_violation y se devuelve como ErrDuplicateOrder.
func (r *CheckpointRepo) Create(ctx context.Context, cp *entity.RoundCheckpoint) error {
	query := `
		INSERT INTO rondas_puntos (ronda_id, orden, nombre, latitud, longitud, radio_metros, codigo_qr, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		cp.RoundID, cp.Order, cp.Name, cp.Latitude, cp.Longitude, cp.RadiusM, nullString(cp.QRCode), cp.CreatedAt,
	).Scan(&cp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w (orden %d)", domain.ErrDuplicateOrder, cp.Order)
		}
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}

func (r *CheckpointRepo) GetByID(ctx context.Context, id int64) (*entity.RoundCheckpoint, error) {
	cp, err := scanCheckpoint(r.q.QueryRow(ctx, `SELECT `+checkpointColumns+` FROM rondas_puntos WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkpoint: %w", err)
	}
	return cp, nil
}

func (r *CheckpointRepo) FindByOrder(ctx context.Context, roundID int64, order int) (*entity.RoundCheckpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM rondas_puntos WHERE ronda_id = $1 AND orden = $2`
	cp, err := scanCheckpoint(r.q.QueryRow(ctx, query, roundID, order))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find checkpoint by order: %w", err)
	}
	return cp, nil
}

func (r *CheckpointRepo) ListByRound(ctx context.Context, roundID int64) ([]*entity.RoundCheckpoint, error) {
	rows, err := r.q.Query(ctx, `SELECT `+checkpointColumns+` FROM rondas_puntos WHERE ronda_id = $1 ORDER BY orden`, roundID)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoundCheckpoint
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		list = append(list, cp)
	}
	return list, rows.Err()
}

func (r *CheckpointRepo) Update(ctx context.Context, cp *entity.RoundCheckpoint) error {
	query := `
		UPDATE rondas_puntos SET orden = $2, nombre = $3, latitud = $4, longitud = $5, radio_metros = $6, codigo_qr = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		cp.ID, cp.Order, cp.Name, cp.Latitude, cp.Longitude, cp.RadiusM, nullString(cp.QRCode),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w (orden %d)", domain.ErrDuplicateOrder, cp.Order)
		}
		return fmt.Errorf("update checkpoint: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CheckpointRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM rondas_puntos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
