// Package features implementa el gate de feature flags con cache de lectura.
package features

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// DefaultTTL vigencia de una entrada de cache.
const DefaultTTL = 300 * time.Second

// FlagCache cache externo del estado de los flags.
type FlagCache interface {
	// Get devuelve found=false si la clave no está en cache.
	Get(ctx context.Context, key string) (enabled bool, found bool, err error)
	Set(ctx context.Context, key string, enabled bool, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Service consulta y administra feature flags.
type Service struct {
	store repository.FeatureFlagRepository
	cache FlagCache
	ttl   time.Duration
	log   zerolog.Logger
	group singleflight.Group
	now   func() time.Time

	// gen cuenta las escrituras por clave; una lectura que empezó antes de
	// una escritura no puede poblar el cache.
	mu  sync.Mutex
	gen map[string]uint64
}

// NewService construye el servicio. ttl <= 0 usa DefaultTTL.
func NewService(store repository.FeatureFlagRepository, cache FlagCache, ttl time.Duration, log zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{store: store, cache: cache, ttl: ttl, log: log, now: time.Now, gen: map[string]uint64{}}
}

// IsEnabled indica si el flag está activo. Un flag inexistente se considera
// desactivado y no se guarda en cache. Los errores del cache no interrumpen la
// consulta: se registran y se lee el almacén.
func (s *Service) IsEnabled(ctx context.Context, key string) (bool, error) {
	enabled, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("flag", key).Msg("cache de feature flags no disponible")
	} else if found {
		return enabled, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		gen := s.generation(key)
		flag, err := s.store.Get(ctx, key)
		if err != nil {
			return false, err
		}
		if flag == nil {
			s.log.Warn().Str("flag", key).Msg("feature flag inexistente, se asume desactivado")
			return false, nil
		}
		s.populate(ctx, key, flag.Enabled, gen)
		return flag.Enabled, nil
	})
	if err != nil {
		return false, fmt.Errorf("consultar feature flag %s: %w", key, err)
	}
	return v.(bool), nil
}

// List devuelve todos los flags.
func (s *Service) List(ctx context.Context) ([]dto.FeatureFlagResponse, error) {
	flags, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FeatureFlagResponse, 0, len(flags))
	for _, f := range flags {
		out = append(out, toResponse(f))
	}
	return out, nil
}

// Get devuelve un flag; domain.ErrNotFound si no existe.
func (s *Service) Get(ctx context.Context, key string) (*dto.FeatureFlagResponse, error) {
	f, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	r := toResponse(f)
	return &r, nil
}

// Create registra un flag nuevo; domain.ErrDuplicate si la clave existe.
func (s *Service) Create(ctx context.Context, in dto.CreateFeatureFlagRequest) (*dto.FeatureFlagResponse, error) {
	existing, err := s.store.Get(ctx, in.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := s.now()
	f := &entity.FeatureFlag{
		Key:         in.Key,
		Enabled:     in.Enabled,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}
	// Puede existir una entrada previa de una clave borrada y recreada.
	s.bump(in.Key)
	s.invalidate(ctx, in.Key)
	r := toResponse(f)
	return &r, nil
}

// Update escribe el almacén, invalida el cache y lo vuelve a poblar si cambió enabled.
func (s *Service) Update(ctx context.Context, key string, in dto.UpdateFeatureFlagRequest) (*dto.FeatureFlagResponse, error) {
	f, err := s.store.Update(ctx, key, entity.FeatureFlagPatch{Enabled: in.Enabled, Description: in.Description})
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	s.bump(key)
	s.invalidate(ctx, key)
	if in.Enabled != nil {
		if err := s.cache.Set(ctx, key, f.Enabled, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("flag", key).Msg("no se pudo repoblar el cache del flag")
		}
	}
	r := toResponse(f)
	return &r, nil
}

// Delete elimina el flag y su entrada de cache.
func (s *Service) Delete(ctx context.Context, key string) error {
	f, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}
	s.bump(key)
	s.invalidate(ctx, key)
	return nil
}

func (s *Service) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen[key]
}

func (s *Service) bump(key string) {
	s.mu.Lock()
	s.gen[key]++
	s.mu.Unlock()
}

// populate guarda en cache el valor leído solo si nadie escribió la clave
// desde que empezó la lectura.
func (s *Service) populate(ctx context.Context, key string, enabled bool, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[key] != gen {
		return
	}
	if err := s.cache.Set(ctx, key, enabled, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("flag", key).Msg("no se pudo guardar el flag en cache")
	}
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("flag", key).Msg("no se pudo invalidar el cache del flag")
	}
}

func toResponse(f *entity.FeatureFlag) dto.FeatureFlagResponse {
	return dto.FeatureFlagResponse{
		Key:         f.Key,
		Enabled:     f.Enabled,
		Description: f.Description,
		UpdatedAt:   f.UpdatedAt,
	}
}
