package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// NoveltyHandler novedades de personal (incapacidades, permisos, vacaciones).
type NoveltyHandler struct {
	uc *usecase.NoveltyUseCase
}

// NewNoveltyHandler construye el handler.
func NewNoveltyHandler(uc *usecase.NoveltyUseCase) *NoveltyHandler {
	return &NoveltyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear novedad
// @Tags         novedades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoveltyRequest  true  "empleado_id, tipo, descripcion, fecha_inicio, fecha_fin"
// @Success      201   {object}  dto.NoveltyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/novedades [post]
func (h *NoveltyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateNovelty(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar novedades
// @Tags         novedades
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.NoveltyResponse]
// @Router       /api/novedades [get]
func (h *NoveltyHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener novedad por ID
// @Tags         novedades
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.NoveltyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/novedades/{id} [get]
func (h *NoveltyHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar novedad
// @Tags         novedades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateNoveltyRequest  true  "campos a modificar"
// @Success      200   {object}  dto.NoveltyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/novedades/{id} [put]
func (h *NoveltyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateNoveltyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar novedad
// @Tags         novedades
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/novedades/{id} [delete]
func (h *NoveltyHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
