package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// SubPostHandler subpuestos de trabajo y asignación de guardas.
type SubPostHandler struct {
	uc *usecase.SubPostUseCase
}

// NewSubPostHandler construye el handler.
func NewSubPostHandler(uc *usecase.SubPostUseCase) *SubPostHandler {
	return &SubPostHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subpuesto
// @Tags         subpuestos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubPostRequest  true  "puesto_id, nombre, guardas_requeridos"
// @Success      201   {object}  dto.SubPostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subpuestos [post]
func (h *SubPostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubPostRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateSubPost(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar subpuestos
// @Tags         subpuestos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.SubPostResponse]
// @Router       /api/subpuestos [get]
func (h *SubPostHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subpuesto por ID
// @Tags         subpuestos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.SubPostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subpuestos/{id} [get]
func (h *SubPostHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar subpuesto
// @Tags         subpuestos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateSubPostRequest  true  "campos a modificar"
// @Success      200   {object}  dto.SubPostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subpuestos/{id} [put]
func (h *SubPostHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateSubPostRequest
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
// @Summary      Eliminar subpuesto
// @Tags         subpuestos
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subpuestos/{id} [delete]
func (h *SubPostHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignGuard godoc
// @Summary      Asignar guarda a un subpuesto
// @Description  Rechaza con 409 si el subpuesto está inactivo, el guarda ya está asignado o se alcanzó guardas_requeridos.
// @Tags         subpuestos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del subpuesto"
// @Param        body  body  dto.AssignGuardRequest  true  "empleado_id, fecha_inicio"
// @Success      201   {object}  dto.GuardAssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subpuestos/{id}/asignaciones [post]
func (h *SubPostHandler) AssignGuard(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AssignGuardRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.AssignGuard(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AssignGuard(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAssignments godoc
// @Summary      Guardas asignados a un subpuesto
// @Tags         subpuestos
// @Security     Bearer
// @Produce      json
// @Param        id       path   int   true   "ID del subpuesto"
// @Param        activos  query  bool  false  "Solo asignaciones activas"
// @Success      200  {array}   dto.GuardAssignmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subpuestos/{id}/asignaciones [get]
func (h *SubPostHandler) ListAssignments(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListAssignments(c.UserContext(), id, c.QueryBool("activos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EndAssignment godoc
// @Summary      Finalizar asignación de guarda
// @Tags         subpuestos
// @Security     Bearer
// @Param        asignacionID  path  int  true  "ID de la asignación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subpuestos/asignaciones/{asignacionID} [delete]
func (h *SubPostHandler) EndAssignment(c *fiber.Ctx) error {
	id, err := paramID(c, "asignacionID")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EndAssignment(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
