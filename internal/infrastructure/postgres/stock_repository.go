package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre inventario_puesto (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `puesto_id, item_variante_id, condicion, cantidad_actual, cantidad_minima, ultima_actualizacion`

func scanStock(row pgx.Row) (*entity.StockSnapshot, error) {
	var s entity.StockSnapshot
	if err := row.Scan(&s.LocationID, &s.ItemVariantID, &s.Condition, &s.CurrentQuantity, &s.MinimumQuantity, &s.LastUpdated); err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene la existencia de la clave; nil si no hay fila.
func (r *StockRepo) Get(ctx context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	query := `SELECT ` + stockColumns + `
		FROM inventario_puesto
		WHERE puesto_id = $1 AND item_variante_id = $2 AND condicion = $3`
	s, err := scanStock(r.q.QueryRow(ctx, query, key.LocationID, key.ItemVariantID, key.Condition))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la existencia de la clave dentro de la transacción.
// Si la clave aún no existe se inserta en cero antes del SELECT FOR UPDATE,
// así dos primeros movimientos concurrentes se serializan sobre la misma fila.
// Un rollback descarta esa fila.
func (r *StockRepo) GetForUpdate(ctx context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	ensure := `
		INSERT INTO inventario_puesto (puesto_id, item_variante_id, condicion, cantidad_actual, cantidad_minima)
		VALUES ($1, $2, $3, 0, 0)
		ON CONFLICT (puesto_id, item_variante_id, condicion) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, key.LocationID, key.ItemVariantID, key.Condition); err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}

	query := `SELECT ` + stockColumns + `
		FROM inventario_puesto
		WHERE puesto_id = $1 AND item_variante_id = $2 AND condicion = $3
		FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(ctx, query, key.LocationID, key.ItemVariantID, key.Condition))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// Upsert inserta o sobrescribe la existencia de la clave.
func (r *StockRepo) Upsert(ctx context.Context, s *entity.StockSnapshot) error {
	query := `
		INSERT INTO inventario_puesto (puesto_id, item_variante_id, condicion, cantidad_actual, cantidad_minima, ultima_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (puesto_id, item_variante_id, condicion)
		DO UPDATE SET cantidad_actual = EXCLUDED.cantidad_actual,
			cantidad_minima = EXCLUDED.cantidad_minima,
			ultima_actualizacion = EXCLUDED.ultima_actualizacion`
	_, err := r.q.Exec(ctx, query,
		s.LocationID, s.ItemVariantID, s.Condition, s.CurrentQuantity, s.MinimumQuantity, s.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByLocation lista las existencias de un puesto.
func (r *StockRepo) ListByLocation(ctx context.Context, locationID int64) ([]*entity.StockSnapshot, error) {
	query := `SELECT ` + stockColumns + `
		FROM inventario_puesto WHERE puesto_id = $1
		ORDER BY item_variante_id, condicion`
	return r.list(ctx, query, locationID)
}

// ListBelowMinimum lista existencias con mínimo configurado y cantidad por debajo.
func (r *StockRepo) ListBelowMinimum(ctx context.Context) ([]*entity.StockSnapshot, error) {
	query := `SELECT ` + stockColumns + `
		FROM inventario_puesto
		WHERE cantidad_minima > 0 AND cantidad_actual < cantidad_minima
		ORDER BY puesto_id, item_variante_id`
	return r.list(ctx, query)
}

// SetMinimum fija el mínimo; crea la fila con cantidad 0 si no existe.
func (r *StockRepo) SetMinimum(ctx context.Context, key repository.StockKey, minimum int) error {
	query := `
		INSERT INTO inventario_puesto (puesto_id, item_variante_id, condicion, cantidad_actual, cantidad_minima, ultima_actualizacion)
		VALUES ($1, $2, $3, 0, $4, now())
		ON CONFLICT (puesto_id, item_variante_id, condicion)
		DO UPDATE SET cantidad_minima = EXCLUDED.cantidad_minima`
	if _, err := r.q.Exec(ctx, query, key.LocationID, key.ItemVariantID, key.Condition, minimum); err != nil {
		return fmt.Errorf("set stock minimum: %w", err)
	}
	return nil
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockSnapshot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockSnapshot
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
