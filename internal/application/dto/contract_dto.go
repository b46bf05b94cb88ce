package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body para POST /api/contratos.
type CreateContractRequest struct {
	ClientID  int64           `json:"cliente_id"`
	Number    string          `json:"numero"`
	StartDate time.Time       `json:"fecha_inicio"`
	EndDate   *time.Time      `json:"fecha_fin,omitempty"`
	Value     decimal.Decimal `json:"valor"`
}

// UpdateContractRequest body para PUT /api/contratos/:id.
type UpdateContractRequest struct {
	EndDate *time.Time       `json:"fecha_fin,omitempty"`
	Value   *decimal.Decimal `json:"valor,omitempty"`
	Status  *string          `json:"estado,omitempty"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID        int64           `json:"id"`
	ClientID  int64           `json:"cliente_id"`
	Number    string          `json:"numero"`
	StartDate time.Time       `json:"fecha_inicio"`
	EndDate   *time.Time      `json:"fecha_fin,omitempty"`
	Value     decimal.Decimal `json:"valor"`
	Status    string          `json:"estado"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
