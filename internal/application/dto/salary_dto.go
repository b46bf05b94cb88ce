package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalaryRequest body para POST /api/salarios.
type CreateSalaryRequest struct {
	Name   string          `json:"nombre"`
	Amount decimal.Decimal `json:"valor"`
	Year   int             `json:"vigencia"`
}

// UpdateSalaryRequest body para PUT /api/salarios/:id.
type UpdateSalaryRequest struct {
	Name   *string          `json:"nombre,omitempty"`
	Amount *decimal.Decimal `json:"valor,omitempty"`
	Year   *int             `json:"vigencia,omitempty"`
}

// SalaryResponse salida de una escala salarial.
type SalaryResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nombre"`
	Amount    decimal.Decimal `json:"valor"`
	Year      int             `json:"vigencia"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
