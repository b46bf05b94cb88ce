package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary escala salarial vigente para un año.
type Salary struct {
	ID        int64
	Name      string
	Amount    decimal.Decimal
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
