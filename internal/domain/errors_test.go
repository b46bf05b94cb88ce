package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
)

func TestInsufficientStockError(t *testing.T) {
	err := fmt.Errorf("registrar movimiento: %w", &domain.InsufficientStockError{Requested: 10, Available: 6})

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "solicitado 10")
	assert.Contains(t, err.Error(), "disponible 6")

	var ise *domain.InsufficientStockError
	assert.True(t, errors.As(err, &ise))
	assert.Equal(t, 6, ise.Available)
}

func TestValidationError(t *testing.T) {
	err := domain.Invalid("quantity", "debe ser mayor que cero")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "quantity: debe ser mayor que cero", err.Error())
}
