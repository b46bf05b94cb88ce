package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureFlagCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewFeatureFlagCache(db)
	ctx := context.Background()

	mock.ExpectGet("feature_flag:rondas").SetVal("1")
	mock.ExpectGet("feature_flag:inventario").SetVal("0")

	enabled, found, err := cache.Get(ctx, "rondas")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, enabled)

	enabled, found, err = cache.Get(ctx, "inventario")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, enabled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeatureFlagCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewFeatureFlagCache(db)

	mock.ExpectGet("feature_flag:rondas").RedisNil()

	_, found, err := cache.Get(context.Background(), "rondas")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeatureFlagCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewFeatureFlagCache(db)

	mock.ExpectGet("feature_flag:rondas").SetErr(errors.New("connection refused"))

	_, found, err := cache.Get(context.Background(), "rondas")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestFeatureFlagCache_SetWithTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewFeatureFlagCache(db)

	mock.ExpectSet("feature_flag:rondas", "1", 300*time.Second).SetVal("OK")
	mock.ExpectSet("feature_flag:novedades", "0", 300*time.Second).SetVal("OK")

	require.NoError(t, cache.Set(context.Background(), "rondas", true, 300*time.Second))
	require.NoError(t, cache.Set(context.Background(), "novedades", false, 300*time.Second))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeatureFlagCache_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewFeatureFlagCache(db)

	mock.ExpectDel("feature_flag:rondas").SetVal(1)

	require.NoError(t, cache.Delete(context.Background(), "rondas"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
