package entity

import "time"

// Tipos de movimiento de inventario por puesto.
const (
	MovementTypeDeliver  = "entrega"  // entrega al puesto (suma)
	MovementTypeWithdraw = "retiro"   // retiro del puesto
	MovementTypeConsume  = "consumo"  // consumo
	MovementTypeWriteOff = "baja"     // baja por daño o pérdida
	MovementTypeTransfer = "traslado" // traslado a otro puesto
)

// MovementTypes lista los tipos válidos.
var MovementTypes = []string{
	MovementTypeDeliver,
	MovementTypeWithdraw,
	MovementTypeConsume,
	MovementTypeWriteOff,
	MovementTypeTransfer,
}

// MovementRecord registro inmutable del libro de movimientos (append-only).
type MovementRecord struct {
	ID                 int64
	LocationID         int64
	ItemVariantID      int64
	Type               string
	Quantity           int // siempre positivo; el signo lo define Type
	Condition          string
	ResponsiblePartyID string
	Notes              string
	CreatedAt          time.Time
}
