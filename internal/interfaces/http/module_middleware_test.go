package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/Vigilancia-api/internal/interfaces/http"
)

type stubChecker struct {
	enabled bool
	err     error
	keys    []string
}

func (s *stubChecker) IsEnabled(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.enabled, s.err
}

func featureApp(checker *stubChecker) *fiber.App {
	app := fiber.New()
	app.Get("/reporte",
		apphttp.RequireFeature("reporte_inventario_pdf", checker),
		func(c *fiber.Ctx) error { return c.SendString("pdf") },
	)
	return app
}

func TestRequireFeature_Activo(t *testing.T) {
	checker := &stubChecker{enabled: true}
	resp := doRequest(t, featureApp(checker), "/reporte", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"reporte_inventario_pdf"}, checker.keys)
}

func TestRequireFeature_Apagado_Retorna404(t *testing.T) {
	resp := doRequest(t, featureApp(&stubChecker{}), "/reporte", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FEATURE_DISABLED")
}

func TestRequireFeature_ErrorSeTrataComoApagado(t *testing.T) {
	resp := doRequest(t, featureApp(&stubChecker{enabled: true, err: errors.New("redis caído")}), "/reporte", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
