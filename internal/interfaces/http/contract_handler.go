package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
)

// ContractHandler contratos de servicio por cliente.
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "cliente_id, numero, fecha_inicio, fecha_fin, valor"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.CreateContract(in).Err(); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar contratos
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        cliente_id  query  int  false  "Filtrar por cliente"
// @Param        limit       query  int  false  "Máximo 100"
// @Param        offset      query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.ContractResponse]
// @Router       /api/contratos [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	clientID, err := queryID(c, "cliente_id")
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), clientID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID"
// @Param        body  body  dto.UpdateContractRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Status != nil {
		if err := validation.ContractStatus(*in.Status).Err(); err != nil {
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
// @Summary      Eliminar contrato
// @Tags         contratos
// @Security     Bearer
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
