package features

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

type memFlags struct {
	mu    sync.Mutex
	flags map[string]*entity.FeatureFlag
	reads int
}

func (m *memFlags) Get(_ context.Context, key string) (*entity.FeatureFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	f, ok := m.flags[key]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (m *memFlags) List(_ context.Context) ([]*entity.FeatureFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.FeatureFlag
	for _, f := range m.flags {
		out = append(out, f)
	}
	return out, nil
}

func (m *memFlags) Create(_ context.Context, f *entity.FeatureFlag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *f
	m.flags[f.Key] = &cp
	return nil
}

func (m *memFlags) Update(_ context.Context, key string, p entity.FeatureFlagPatch) (*entity.FeatureFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.flags[key]
	if !ok {
		return nil, nil
	}
	if p.Enabled != nil {
		f.Enabled = *p.Enabled
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	cp := *f
	return &cp, nil
}

func (m *memFlags) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flags, key)
	return nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[string]bool
	ttls    map[string]time.Duration
	failGet error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]bool{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string) (bool, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet != nil {
		return false, false, c.failGet
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, enabled bool, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = enabled
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func newFixture() (*Service, *memFlags, *memCache, *bytes.Buffer) {
	store := &memFlags{flags: map[string]*entity.FeatureFlag{}}
	cache := newMemCache()
	logs := &bytes.Buffer{}
	return NewService(store, cache, 0, zerolog.New(logs)), store, cache, logs
}

func TestIsEnabled_MissingKey(t *testing.T) {
	svc, _, cache, logs := newFixture()

	enabled, err := svc.IsEnabled(context.Background(), "modulo_rondas")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Empty(t, cache.entries, "un flag inexistente no se guarda en cache")
	assert.Contains(t, logs.String(), "modulo_rondas")
}

func TestIsEnabled_PopulatesCacheWithDefaultTTL(t *testing.T) {
	svc, store, cache, _ := newFixture()
	store.flags["inventario"] = &entity.FeatureFlag{Key: "inventario", Enabled: true}

	enabled, err := svc.IsEnabled(context.Background(), "inventario")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.True(t, cache.entries["inventario"])
	assert.Equal(t, 300*time.Second, cache.ttls["inventario"])
}

func TestIsEnabled_HitSkipsStore(t *testing.T) {
	svc, store, cache, _ := newFixture()
	cache.entries["inventario"] = true

	enabled, err := svc.IsEnabled(context.Background(), "inventario")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Zero(t, store.reads)
}

func TestIsEnabled_CacheErrorFallsBackToStore(t *testing.T) {
	svc, store, cache, logs := newFixture()
	store.flags["inventario"] = &entity.FeatureFlag{Key: "inventario", Enabled: true}
	cache.failGet = errors.New("connection refused")

	enabled, err := svc.IsEnabled(context.Background(), "inventario")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, 1, store.reads)
	assert.Contains(t, logs.String(), "connection refused")
}

func TestUpdate_InvalidatesAndRepopulates(t *testing.T) {
	svc, store, cache, _ := newFixture()
	ctx := context.Background()
	store.flags["rondas"] = &entity.FeatureFlag{Key: "rondas", Enabled: true}
	_, err := svc.IsEnabled(ctx, "rondas")
	require.NoError(t, err)

	off := false
	_, err = svc.Update(ctx, "rondas", dto.UpdateFeatureFlagRequest{Enabled: &off})
	require.NoError(t, err)

	v, ok := cache.entries["rondas"]
	assert.True(t, ok)
	assert.False(t, v)

	reads := store.reads
	enabled, err := svc.IsEnabled(ctx, "rondas")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Equal(t, reads, store.reads)
}

func TestUpdate_DescriptionOnlyInvalidates(t *testing.T) {
	svc, store, cache, _ := newFixture()
	store.flags["rondas"] = &entity.FeatureFlag{Key: "rondas", Enabled: true}
	cache.entries["rondas"] = true

	desc := "Módulo de rondas"
	out, err := svc.Update(context.Background(), "rondas", dto.UpdateFeatureFlagRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Módulo de rondas", out.Description)
	_, ok := cache.entries["rondas"]
	assert.False(t, ok)
}

func TestUpdate_Unknown(t *testing.T) {
	svc, _, _, _ := newFixture()
	on := true
	_, err := svc.Update(context.Background(), "nada", dto.UpdateFeatureFlagRequest{Enabled: &on})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAndDelete(t *testing.T) {
	svc, _, cache, _ := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateFeatureFlagRequest{Key: "novedades", Enabled: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateFeatureFlagRequest{Key: "novedades"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = svc.IsEnabled(ctx, "novedades")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "novedades"))
	_, ok := cache.entries["novedades"]
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, "novedades"), domain.ErrNotFound)
}

// stalledFlags detiene la primera lectura después de leer el almacén.
type stalledFlags struct {
	*memFlags
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (s *stalledFlags) Get(ctx context.Context, key string) (*entity.FeatureFlag, error) {
	f, err := s.memFlags.Get(ctx, key)
	s.once.Do(func() {
		close(s.read)
		<-s.release
	})
	return f, err
}

func TestIsEnabled_LecturaEnCursoNoPisaUpdate(t *testing.T) {
	ctx := context.Background()
	store := &stalledFlags{
		memFlags: &memFlags{flags: map[string]*entity.FeatureFlag{"rondas": {Key: "rondas"}}},
		read:     make(chan struct{}),
		release:  make(chan struct{}),
	}
	cache := newMemCache()
	svc := NewService(store, cache, 0, zerolog.Nop())

	done := make(chan bool)
	go func() {
		v, err := svc.IsEnabled(ctx, "rondas")
		assert.NoError(t, err)
		done <- v
	}()
	<-store.read

	on := true
	_, err := svc.Update(ctx, "rondas", dto.UpdateFeatureFlagRequest{Enabled: &on})
	require.NoError(t, err)
	close(store.release)
	assert.False(t, <-done, "la lectura en curso devuelve el valor que leyó")

	cache.mu.Lock()
	cached, ok := cache.entries["rondas"]
	cache.mu.Unlock()
	assert.True(t, ok)
	assert.True(t, cached, "el cache conserva el valor de Update")

	enabled, err := svc.IsEnabled(ctx, "rondas")
	require.NoError(t, err)
	assert.True(t, enabled)
}
