package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de contrato.
const (
	ContractActive    = "activo"
	ContractSuspended = "suspendido"
	ContractEnded     = "terminado"
)

// Contract contrato de prestación de servicio con un cliente.
type Contract struct {
	ID        int64
	ClientID  int64
	Number    string
	StartDate time.Time
	EndDate   *time.Time
	Value     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
