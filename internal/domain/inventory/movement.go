// Package inventory contiene las reglas de dominio de los movimientos de inventario por puesto.
package inventory

import (
	"math"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// MaxQuantity tope de cantidades y existencias (columnas INTEGER).
const MaxQuantity = math.MaxInt32

// IsKnownType informa si t es uno de los tipos de movimiento admitidos.
func IsKnownType(t string) bool {
	for _, known := range entity.MovementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsDecreasing clasifica el movimiento: solo la entrega al puesto suma existencia.
func IsDecreasing(t string) bool {
	return t != entity.MovementTypeDeliver
}

// ApplyMovement calcula la nueva existencia a partir de la actual.
// NuevaCantidad = Actual + Cantidad (entrega) | Actual - Cantidad (resto).
// Una salida mayor que la existencia devuelve *domain.InsufficientStockError.
func ApplyMovement(current int, movementType string, quantity int) (int, error) {
	if !IsKnownType(movementType) {
		return current, domain.Invalid("movement_type", "tipo de movimiento desconocido")
	}
	if quantity <= 0 {
		return current, domain.Invalid("quantity", "debe ser mayor que cero")
	}
	if quantity > MaxQuantity {
		return current, domain.Invalid("quantity", "supera el máximo admitido")
	}
	if !IsDecreasing(movementType) {
		if current > MaxQuantity-quantity {
			return current, domain.Invalid("quantity", "la existencia resultante supera el máximo admitido")
		}
		return current + quantity, nil
	}
	if quantity > current {
		return current, &domain.InsufficientStockError{Requested: quantity, Available: current}
	}
	return current - quantity, nil
}
