package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// IncidentHandler incidentes reportados en los puestos.
type IncidentHandler struct {
	uc *usecase.IncidentUseCase
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *usecase.IncidentUseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

// Create godoc
// @Summary      Reportar incidente
// @Description  El usuario autenticado queda como quien reporta.
// @Tags         incidentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "puesto_id, tipo, descripcion, gravedad"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/incidentes [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateIncident(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar incidentes
// @Tags         incidentes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.IncidentResponse]
// @Router       /api/incidentes [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener incidente por ID
// @Tags         incidentes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.IncidentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidentes/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar incidente
// @Tags         incidentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateIncidentRequest  true  "campos a modificar"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incidentes/{id} [put]
func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateIncidentRequest
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
// @Summary      Eliminar incidente
// @Tags         incidentes
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/incidentes/{id} [delete]
func (h *IncidentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
