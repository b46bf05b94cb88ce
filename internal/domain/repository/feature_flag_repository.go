package repository

import (
	"context"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// FeatureFlagRepository puerto de persistencia para feature_flags.
type FeatureFlagRepository interface {
	// Get devuelve el flag o nil si no existe.
	Get(ctx context.Context, key string) (*entity.FeatureFlag, error)
	List(ctx context.Context) ([]*entity.FeatureFlag, error)
	Create(ctx context.Context, flag *entity.FeatureFlag) error
	// Update aplica el patch y devuelve el flag resultante (nil si no existe).
	Update(ctx context.Context, key string, patch entity.FeatureFlagPatch) (*entity.FeatureFlag, error)
	Delete(ctx context.Context, key string) error
}
