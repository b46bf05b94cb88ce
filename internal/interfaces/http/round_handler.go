package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/rounds"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// RoundHandler definiciones de ronda y sus puntos de control.
type RoundHandler struct {
	uc *rounds.UseCase
}

// NewRoundHandler construye el handler.
func NewRoundHandler(uc *rounds.UseCase) *RoundHandler {
	return &RoundHandler{uc: uc}
}

// Create godoc
// @Summary      Crear definición de ronda
// @Tags         rondas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoundRequest  true  "nombre, subpuesto_id, descripcion"
// @Success      201   {object}  dto.RoundResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion [post]
func (h *RoundHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoundRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateRound(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rondas
// @Tags         rondas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.RoundResponse]
// @Router       /api/rondas-definicion [get]
func (h *RoundHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ronda
// @Tags         rondas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la ronda"
// @Success      200  {object}  dto.RoundResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/{id} [get]
func (h *RoundHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar ronda
// @Tags         rondas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la ronda"
// @Param        body  body  dto.UpdateRoundRequest  true  "campos a modificar"
// @Success      200   {object}  dto.RoundResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/{id} [put]
func (h *RoundHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateRoundRequest
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
// @Summary      Eliminar ronda
// @Tags         rondas
// @Security     Bearer
// @Param        id   path  int  true  "ID de la ronda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/{id} [delete]
func (h *RoundHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCheckpoints godoc
// @Summary      Puntos de control de una ronda (por orden)
// @Tags         rondas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la ronda"
// @Success      200  {array}   dto.CheckpointResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/{id}/puntos [get]
func (h *RoundHandler) ListCheckpoints(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListCheckpoints(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddCheckpoint godoc
// @Summary      Agregar punto de control
// @Description  El orden debe ser único dentro de la ronda. Si la ronda ya tiene ejecuciones
// @Description  se devuelve una advertencia (o 409 si la política lo bloquea).
// @Tags         rondas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCheckpointRequest  true  "ronda_id, orden, nombre, coordenadas"
// @Success      201   {object}  dto.CheckpointMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/puntos [post]
func (h *RoundHandler) AddCheckpoint(c *fiber.Ctx) error {
	var in dto.CreateCheckpointRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateCheckpoint(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddCheckpoint(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCheckpoint godoc
// @Summary      Actualizar punto de control
// @Tags         rondas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        puntoID  path  int                          true  "ID del punto"
// @Param        body     body  dto.UpdateCheckpointRequest  true  "campos a modificar"
// @Success      200      {object}  dto.CheckpointMutationResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/puntos/{puntoID} [put]
func (h *RoundHandler) UpdateCheckpoint(c *fiber.Ctx) error {
	id, err := paramID(c, "puntoID")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCheckpointRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.UpdateCheckpoint(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateCheckpoint(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCheckpoint godoc
// @Summary      Eliminar punto de control
// @Tags         rondas
// @Security     Bearer
// @Produce      json
// @Param        puntoID  path  int  true  "ID del punto"
// @Success      200      {object}  dto.CheckpointMutationResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/rondas-definicion/puntos/{puntoID} [delete]
func (h *RoundHandler) DeleteCheckpoint(c *fiber.Ctx) error {
	id, err := paramID(c, "puntoID")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.DeleteCheckpoint(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
