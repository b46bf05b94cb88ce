package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/application/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/application/validation"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de inventario por puesto (protegido).
type InventoryHandler struct {
	record *inventory.RecordMovementUseCase
	stock  *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(record *inventory.RecordMovementUseCase, stock *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{record: record, stock: stock}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario en un puesto
// @Description  entrega suma a la existencia; retiro, consumo, baja y traslado restan y fallan si no hay stock suficiente.
// @Tags         inventario-puesto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "puesto_id, item_variante_id, tipo_movimiento, cantidad, condicion"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto/movimiento [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.RecordMovement(in).Err(); err != nil {
		return respondError(c, err)
	}
	res, err := h.record.RecordMovement(c.UserContext(), inventory.MovementInput{
		LocationID:         in.LocationID,
		ItemVariantID:      in.ItemVariantID,
		Type:               in.Type,
		Quantity:           in.Quantity,
		Condition:          in.Condition,
		ResponsiblePartyID: userID,
		Notes:              in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{
		NewQuantity: res.NewQuantity,
		Movement:    toMovementResponse(res.Movement),
	})
}

// ListByLocation godoc
// @Summary      Existencias de un puesto
// @Tags         inventario-puesto
// @Security     Bearer
// @Produce      json
// @Param        puesto_id  query  int  true  "ID del puesto"
// @Success      200  {array}   dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto [get]
func (h *InventoryHandler) ListByLocation(c *fiber.Ctx) error {
	locationID, err := strconv.ParseInt(c.Query("puesto_id"), 10, 64)
	if err != nil {
		locationID = 0
	}
	list, err := h.stock.ListByLocation(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponses(list))
}

// GetStock godoc
// @Summary      Existencia de un elemento en un puesto
// @Tags         inventario-puesto
// @Security     Bearer
// @Produce      json
// @Param        puestoID   path   int     true   "ID del puesto"
// @Param        itemID     path   int     true   "ID de la variante"
// @Param        condicion  query  string  false  "bueno por defecto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto/{puestoID}/items/{itemID} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	locationID, err := paramID(c, "puestoID")
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := paramID(c, "itemID")
	if err != nil {
		return respondError(c, err)
	}
	s, err := h.stock.Get(c.UserContext(), repository.StockKey{
		LocationID:    locationID,
		ItemVariantID: itemID,
		Condition:     c.Query("condicion"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponses([]*entity.StockSnapshot{s})[0])
}

// BelowMinimum godoc
// @Summary      Existencias por debajo del mínimo
// @Description  Ordenadas por déficit (mayor primero).
// @Tags         inventario-puesto
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/inventario-puesto/bajo-minimo [get]
func (h *InventoryHandler) BelowMinimum(c *fiber.Ctx) error {
	list, err := h.stock.BelowMinimum(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponses(list))
}

// SetMinimum godoc
// @Summary      Fijar cantidad mínima
// @Tags         inventario-puesto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetMinimumRequest  true  "clave y cantidad mínima"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto/minimo [put]
func (h *InventoryHandler) SetMinimum(c *fiber.Ctx) error {
	var in dto.SetMinimumRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validation.SetMinimum(in).Err(); err != nil {
		return respondError(c, err)
	}
	key := repository.StockKey{LocationID: in.LocationID, ItemVariantID: in.ItemVariantID, Condition: in.Condition}
	if err := h.stock.SetMinimum(c.UserContext(), key, in.MinimumQuantity); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements godoc
// @Summary      Libro de movimientos de un puesto
// @Tags         inventario-puesto
// @Security     Bearer
// @Produce      json
// @Param        puesto_id         query  int  true   "ID del puesto"
// @Param        item_variante_id  query  int  false  "Filtrar por variante"
// @Param        limit             query  int  false  "Máximo 100"
// @Param        offset            query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	locationID, err := queryID(c, "puesto_id")
	if err != nil {
		return respondError(c, err)
	}
	itemID, err := queryID(c, "item_variante_id")
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := page(c)
	f := repository.MovementFilter{ItemVariantID: itemID, Limit: limit, Offset: offset}
	if locationID != nil {
		f.LocationID = *locationID
	}
	list, err := h.stock.ListMovements(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.ListResponse[dto.MovementResponse]{
		Items: make([]dto.MovementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range list {
		out.Items = append(out.Items, toMovementResponse(m))
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Reporte PDF de existencias de un puesto
// @Tags         inventario-puesto
// @Security     Bearer
// @Produce      application/pdf
// @Param        puestoID  path  int  true  "ID del puesto"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario-puesto/{puestoID}/reporte [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	locationID, err := paramID(c, "puestoID")
	if err != nil {
		return respondError(c, err)
	}
	pdf, err := h.stock.StockReport(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "inline; filename=inventario-puesto-"+strconv.FormatInt(locationID, 10)+".pdf")
	return c.Send(pdf)
}

func toMovementResponse(m *entity.MovementRecord) dto.MovementResponse {
	if m == nil {
		return dto.MovementResponse{}
	}
	return dto.MovementResponse{
		ID:                 m.ID,
		LocationID:         m.LocationID,
		ItemVariantID:      m.ItemVariantID,
		Type:               m.Type,
		Quantity:           m.Quantity,
		Condition:          m.Condition,
		ResponsiblePartyID: m.ResponsiblePartyID,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
	}
}

func toStockResponses(list []*entity.StockSnapshot) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StockResponse{
			LocationID:      s.LocationID,
			ItemVariantID:   s.ItemVariantID,
			Condition:       s.Condition,
			CurrentQuantity: s.CurrentQuantity,
			MinimumQuantity: s.MinimumQuantity,
			LastUpdated:     s.LastUpdated,
			BelowMinimum:    s.BelowMinimum(),
		})
	}
	return out
}
