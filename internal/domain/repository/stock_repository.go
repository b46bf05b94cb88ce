package repository

import (
	"context"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// StockKey identifica una existencia: puesto, variante de elemento y condición.
type StockKey struct {
	LocationID    int64
	ItemVariantID int64
	Condition     string
}

// StockRepository puerto para consultar/actualizar la existencia actual (inventario_puesto).
type StockRepository interface {
	// Get devuelve la existencia o nil si aún no hay fila para la clave.
	Get(ctx context.Context, key StockKey) (*entity.StockSnapshot, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(ctx context.Context, key StockKey) (*entity.StockSnapshot, error)
	Upsert(ctx context.Context, stock *entity.StockSnapshot) error
	ListByLocation(ctx context.Context, locationID int64) ([]*entity.StockSnapshot, error)
	ListBelowMinimum(ctx context.Context) ([]*entity.StockSnapshot, error)
	SetMinimum(ctx context.Context, key StockKey, minimum int) error
}
