package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/features"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// FeatureHandler administración y consulta de feature flags.
type FeatureHandler struct {
	svc *features.Service
}

// NewFeatureHandler construye el handler.
func NewFeatureHandler(svc *features.Service) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

// IsEnabled godoc
// @Summary      Consultar si un flag está activo
// @Description  Lectura con cache; un flag inexistente se reporta como apagado.
// @Tags         features
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "clave del flag"
// @Success      200  {object}  dto.FeatureEnabledResponse
// @Router       /api/features/{key}/enabled [get]
func (h *FeatureHandler) IsEnabled(c *fiber.Ctx) error {
	key := c.Params("key")
	if err := validation.FeatureKey(key).Err(); err != nil {
		return respondError(c, err)
	}
	enabled, err := h.svc.IsEnabled(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FeatureEnabledResponse{Key: key, Enabled: enabled})
}

// List godoc
// @Summary      Listar feature flags
// @Tags         features
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FeatureFlagResponse
// @Router       /api/features [get]
func (h *FeatureHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener feature flag
// @Tags         features
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "clave del flag"
// @Success      200  {object}  dto.FeatureFlagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/features/{key} [get]
func (h *FeatureHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear feature flag
// @Tags         features
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeatureFlagRequest  true  "key, enabled, description"
// @Success      201   {object}  dto.FeatureFlagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/features [post]
func (h *FeatureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeatureFlagRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.FeatureKey(in.Key).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar feature flag
// @Description  Invalida la entrada de cache y la vuelve a poblar si cambia enabled.
// @Tags         features
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string                        true  "clave del flag"
// @Param        body  body  dto.UpdateFeatureFlagRequest  true  "enabled, description"
// @Success      200   {object}  dto.FeatureFlagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/features/{key} [patch]
func (h *FeatureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFeatureFlagRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.UpdateFeatureFlag(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("key"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar feature flag
// @Tags         features
// @Security     Bearer
// @Param        key  path  string  true  "clave del flag"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/features/{key} [delete]
func (h *FeatureHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("key")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
