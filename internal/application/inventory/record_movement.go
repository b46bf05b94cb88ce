package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario por puesto.
// Lee la existencia con bloqueo de fila (SELECT FOR UPDATE), valida la salida,
// agrega el movimiento al libro y actualiza la existencia en una sola transacción.
type RecordMovementUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, now: time.Now}
}

// MovementInput entrada para registrar un movimiento.
// Condition vacío se toma como "bueno".
type MovementInput struct {
	LocationID         int64
	ItemVariantID      int64
	Type               string
	Quantity           int
	Condition          string
	ResponsiblePartyID string
	Notes              string
}

// MovementResult resultado del registro.
type MovementResult struct {
	NewQuantity int
	Movement    *entity.MovementRecord
}

// RecordMovement aplica el movimiento. Una salida que supera la existencia devuelve
// *domain.InsufficientStockError sin escribir nada. Repetir la misma llamada duplica el efecto.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.LocationID <= 0 {
		return nil, domain.Invalid("location_id", "es requerido")
	}
	if in.ItemVariantID <= 0 {
		return nil, domain.Invalid("item_variant_id", "es requerido")
	}
	if !inventory.IsKnownType(in.Type) {
		return nil, domain.Invalid("movement_type", "tipo de movimiento desconocido")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "debe ser mayor que cero")
	}
	key := repository.StockKey{
		LocationID:    in.LocationID,
		ItemVariantID: in.ItemVariantID,
		Condition:     NormalizeCondition(in.Condition),
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		// 1. Existencia actual; sin fila = 0
		stock, err := stockRepo.GetForUpdate(ctx, key)
		if err != nil {
			return err
		}
		if stock == nil {
			stock = &entity.StockSnapshot{
				LocationID:    key.LocationID,
				ItemVariantID: key.ItemVariantID,
				Condition:     key.Condition,
			}
		}

		// 2-4. Clasificar y validar
		newQty, err := inventory.ApplyMovement(stock.CurrentQuantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		now := uc.now()
		// 5. Libro de movimientos
		mov := &entity.MovementRecord{
			LocationID:         key.LocationID,
			ItemVariantID:      key.ItemVariantID,
			Type:               in.Type,
			Quantity:           in.Quantity,
			Condition:          key.Condition,
			ResponsiblePartyID: in.ResponsiblePartyID,
			Notes:              in.Notes,
			CreatedAt:          now,
		}
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}

		// 6. Existencia derivada
		stock.CurrentQuantity = newQty
		stock.LastUpdated = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}

		result = &MovementResult{NewQuantity: newQty, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NormalizeCondition aplica el valor por defecto y normaliza mayúsculas/espacios.
func NormalizeCondition(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return entity.ConditionGood
	}
	return c
}
