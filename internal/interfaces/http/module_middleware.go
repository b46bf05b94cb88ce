package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
)

// featureChecker es el contrato mínimo que necesita el middleware para consultar un flag.
// Lo implementa *features.Service.
type featureChecker interface {
	IsEnabled(ctx context.Context, key string) (bool, error)
}

// RequireFeature oculta las rutas del grupo mientras el flag esté apagado.
//
// Comportamiento:
//   - 404 FEATURE_DISABLED → flag apagado o inexistente.
//   - Un fallo al consultar el flag se registra y se trata como apagado.
func RequireFeature(key string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enabled, err := checker.IsEnabled(c.UserContext(), key)
		if err != nil {
			log.Warn().Err(err).Str("feature", key).Msg("no se pudo verificar el feature flag")
			enabled = false
		}
		if !enabled {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + key + "' no está habilitada",
			})
		}
		return c.Next()
	}
}
