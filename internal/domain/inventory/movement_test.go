package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/inventory"
)

func TestIsDecreasing(t *testing.T) {
	assert.False(t, inventory.IsDecreasing(entity.MovementTypeDeliver))
	for _, tp := range []string{
		entity.MovementTypeWithdraw,
		entity.MovementTypeConsume,
		entity.MovementTypeWriteOff,
		entity.MovementTypeTransfer,
	} {
		assert.True(t, inventory.IsDecreasing(tp), tp)
	}
}

func TestApplyMovement_EntradaSuma(t *testing.T) {
	got, err := inventory.ApplyMovement(10, entity.MovementTypeDeliver, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestApplyMovement_SalidaResta(t *testing.T) {
	got, err := inventory.ApplyMovement(10, entity.MovementTypeConsume, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = inventory.ApplyMovement(6, entity.MovementTypeWriteOff, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "se puede dejar la existencia exactamente en cero")
}

func TestApplyMovement_StockInsuficiente(t *testing.T) {
	got, err := inventory.ApplyMovement(6, entity.MovementTypeConsume, 10)
	require.Error(t, err)
	assert.Equal(t, 6, got)

	var ise *domain.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 10, ise.Requested)
	assert.Equal(t, 6, ise.Available)
}

func TestApplyMovement_EntradaInvalida(t *testing.T) {
	_, err := inventory.ApplyMovement(1, "prestamo", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyMovement(1, entity.MovementTypeDeliver, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyMovement(1, entity.MovementTypeDeliver, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_TopeDeExistencia(t *testing.T) {
	_, err := inventory.ApplyMovement(0, entity.MovementTypeDeliver, inventory.MaxQuantity+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := inventory.ApplyMovement(inventory.MaxQuantity-1, entity.MovementTypeDeliver, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, inventory.MaxQuantity-1, got)

	got, err = inventory.ApplyMovement(inventory.MaxQuantity-1, entity.MovementTypeDeliver, 1)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxQuantity, got)
}
