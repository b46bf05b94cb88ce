package repository

import (
	"context"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// MovementFilter filtros para listar el libro de movimientos de un puesto.
type MovementFilter struct {
	LocationID    int64
	ItemVariantID *int64
	Limit         int
	Offset        int
}

// MovementRepository puerto de persistencia del libro de movimientos (append-only).
type MovementRepository interface {
	Append(ctx context.Context, movement *entity.MovementRecord) error
	List(ctx context.Context, f MovementFilter) ([]*entity.MovementRecord, error)
}
