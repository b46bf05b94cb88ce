package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// EPSHandler catálogo de EPS.
type EPSHandler struct {
	uc *usecase.EPSUseCase
}

// NewEPSHandler construye el handler.
func NewEPSHandler(uc *usecase.EPSUseCase) *EPSHandler {
	return &EPSHandler{uc: uc}
}

// Create godoc
// @Summary      Crear EPS
// @Tags         eps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEPSRequest  true  "nombre, codigo"
// @Success      201   {object}  dto.EPSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/eps [post]
func (h *EPSHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEPSRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateEPS(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar EPS
// @Tags         eps
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.EPSResponse]
// @Router       /api/eps [get]
func (h *EPSHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener EPS por ID
// @Tags         eps
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.EPSResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eps/{id} [get]
func (h *EPSHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar EPS
// @Tags         eps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateEPSRequest  true  "campos a modificar"
// @Success      200   {object}  dto.EPSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/eps/{id} [put]
func (h *EPSHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateEPSRequest
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
// @Summary      Eliminar EPS
// @Tags         eps
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/eps/{id} [delete]
func (h *EPSHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
