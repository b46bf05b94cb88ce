package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("descartado")
	inv := l.Component("inventario")
	inv.Warn().Int("cantidad", 3).Msg("stock bajo")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "inventario", entry["component"])
	assert.Equal(t, float64(3), entry["cantidad"])
	assert.Equal(t, "stock bajo", entry["message"])
}

func TestComponent_NoAlteraElRaiz(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Out: &buf})

	rondas := l.Component("rondas")
	rondas.Info().Msg("a")
	buf.Reset()
	l.Info().Msg("b")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.NotContains(t, entry, "component")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}
