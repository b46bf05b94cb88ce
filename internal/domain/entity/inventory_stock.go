package entity

import "time"

// Condiciones físicas de un elemento inventariado.
const (
	ConditionGood    = "bueno"
	ConditionFair    = "regular"
	ConditionDamaged = "dañado"
)

// StockSnapshot existencia actual de una variante de elemento en un puesto, por condición.
// Una fila por (LocationID, ItemVariantID, Condition); se sobrescribe en cada movimiento.
type StockSnapshot struct {
	LocationID      int64
	ItemVariantID   int64
	Condition       string
	CurrentQuantity int // nunca negativo
	MinimumQuantity int // referencial, solo alerta
	LastUpdated     time.Time
}

// BelowMinimum indica si la existencia está por debajo del mínimo configurado.
func (s *StockSnapshot) BelowMinimum() bool {
	return s.MinimumQuantity > 0 && s.CurrentQuantity < s.MinimumQuantity
}
