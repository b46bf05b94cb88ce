package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Vigilancia-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConPermisos(t *testing.T) {
	id := pkgjwt.Identity{
		UserID:      "00000000-0000-0000-0000-000000000001",
		Role:        "supervisor",
		Permissions: []string{"inventario.movimiento", "rondas.editar"},
	}
	tok, err := pkgjwt.Generate(testSecret, id, "vigilancia-test", 60)
	require.NoError(t, err)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Identity{UserID: "u", Role: "admin"}, "vigilancia-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Identity{UserID: "u", Role: "admin"}, "vigilancia-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Identity{UserID: "u"}, "x", 60)
	assert.Error(t, err)
}
