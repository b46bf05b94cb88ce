package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos inventario_puesto_movimientos (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append inserta un movimiento y asigna su ID.
func (r *MovementRepo) Append(ctx context.Context, m *entity.MovementRecord) error {
	query := `
		INSERT INTO inventario_puesto_movimientos
			(puesto_id, item_variante_id, tipo_movimiento, cantidad, condicion, responsable_id, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.LocationID, m.ItemVariantID, m.Type, m.Quantity, m.Condition,
		nullString(m.ResponsiblePartyID), nullString(m.Notes), m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("append inventory movement: %w", err)
	}
	return nil
}

// List lista movimientos de un puesto, más recientes primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementRecord, error) {
	query := `
		SELECT id, puesto_id, item_variante_id, tipo_movimiento, cantidad, condicion, responsable_id, observaciones, created_at
		FROM inventario_puesto_movimientos WHERE puesto_id = $1`
	args := []any{f.LocationID}
	pos := 2
	if f.ItemVariantID != nil {
		query += fmt.Sprintf(" AND item_variante_id = $%d", pos)
		args = append(args, *f.ItemVariantID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementRecord
	for rows.Next() {
		var m entity.MovementRecord
		var responsible, notes *string
		if err := rows.Scan(&m.ID, &m.LocationID, &m.ItemVariantID, &m.Type, &m.Quantity,
			&m.Condition, &responsible, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.ResponsiblePartyID = derefString(responsible)
		m.Notes = derefString(notes)
		list = append(list, &m)
	}
	return list, rows.Err()
}
