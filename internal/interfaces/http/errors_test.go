package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
)

func TestRespondError_Mapeo(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"stock", &domain.InsufficientStockError{Requested: 10, Available: 6}, 400, "INSUFFICIENT_STOCK"},
		{"orden duplicado", fmt.Errorf("%w (orden 2)", domain.ErrDuplicateOrder), 400, "DUPLICATE_ORDER"},
		{"validacion", domain.Invalid("nombre", "es requerido"), 400, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, 404, "NOT_FOUND"},
		{"no encontrado envuelto", fmt.Errorf("ronda 9: %w", domain.ErrNotFound), 404, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, 409, "DUPLICATE"},
		{"conflicto", domain.ErrConflict, 409, "CONFLICT"},
		{"email", domain.ErrEmailAlreadyExists, 409, "EMAIL_EXISTS"},
		{"prohibido", domain.ErrForbidden, 403, "FORBIDDEN"},
		{"otro", errors.New("conexión rechazada"), 500, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestRespondError_NoExponeDetalleInterno(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return respondError(c, errors.New("pq: password authentication failed")) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotContains(t, body.Message, "password")
}

func TestPage_Topes(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		l, o := page(c)
		return c.JSON(fiber.Map{"limit": l, "offset": o})
	})
	cases := map[string][2]int{
		"/":                      {20, 0},
		"/?limit=500":            {100, 0},
		"/?limit=0&offset=-3":    {20, 0},
		"/?limit=15&offset=30":   {15, 30},
		"/?limit=abc&offset=xyz": {20, 0},
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		require.NoError(t, err)
		var got map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()
		assert.Equal(t, want[0], got["limit"], url)
		assert.Equal(t, want[1], got["offset"], url)
	}
}
