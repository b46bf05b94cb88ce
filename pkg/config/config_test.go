package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 300*time.Second, cfg.Features.CacheTTL())
	assert.False(t, cfg.Rounds.BlockWithHistory)
	assert.Equal(t, "0 6 * * *", cfg.Jobs.LowStockCron)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("FEATURE_FLAG_CACHE_TTL_SECONDS", 60)
	v.Set("ROUNDS_BLOCK_WITH_HISTORY", true)
	v.Set("DB_PORT", "no-es-numero")

	cfg := fromViper(v)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Minute, cfg.Features.CacheTTL())
	assert.True(t, cfg.Rounds.BlockWithHistory)
	assert.Equal(t, 5432, cfg.DB.Port, "un puerto inválido cae al valor por defecto")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "vig", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/vig?sslmode=require", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
