package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// ShiftHandler programación de turnos por subpuesto.
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Create godoc
// @Summary      Crear turno
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShiftRequest  true  "empleado_id, subpuesto_id, fecha, hora_inicio, hora_fin, tipo"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/turnos [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateShift(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Param        subpuesto_id  query  int  false  "Filtrar por subpuesto"
// @Param        limit         query  int  false  "Máximo 100"
// @Param        offset        query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ShiftResponse]
// @Router       /api/turnos [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	subPostID, err := queryID(c, "subpuesto_id")
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), subPostID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener turno por ID
// @Tags         turnos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [get]
func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar turno
// @Tags         turnos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateShiftRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Type != nil {
		if err := validation.ShiftType(*in.Type).Err(); err != nil {
			return respondError(c, err)
		}
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar turno
// @Tags         turnos
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/turnos/{id} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
