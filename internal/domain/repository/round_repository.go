package repository

import (
	"context"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// RoundRepository puerto de persistencia para rondas_definicion.
type RoundRepository interface {
	Create(ctx context.Context, round *entity.RoundDefinition) error
	GetByID(ctx context.Context, id int64) (*entity.RoundDefinition, error)
	Update(ctx context.Context, round *entity.RoundDefinition) error
	List(ctx context.Context, limit, offset int) ([]*entity.RoundDefinition, error)
	Delete(ctx context.Context, id int64) error
	// CountExecutions cuenta las filas de rondas_ejecucion de la ronda.
	CountExecutions(ctx context.Context, roundID int64) (int, error)
}

// CheckpointRepository puerto de persistencia para rondas_puntos.
type CheckpointRepository interface {
	Create(ctx context.Context, cp *entity.RoundCheckpoint) error
	GetByID(ctx context.Context, id int64) (*entity.RoundCheckpoint, error)
	// FindByOrder devuelve el punto con ese orden en la ronda o nil.
	FindByOrder(ctx context.Context, roundID int64, order int) (*entity.RoundCheckpoint, error)
	ListByRound(ctx context.Context, roundID int64) ([]*entity.RoundCheckpoint, error)
	Update(ctx context.Context, cp *entity.RoundCheckpoint) error
	Delete(ctx context.Context, id int64) error
}
