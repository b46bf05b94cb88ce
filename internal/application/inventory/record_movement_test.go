package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

func newTestUseCase(store *memStore) *RecordMovementUseCase {
	uc := NewRecordMovementUseCase(memTx{store: store})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func goodKey(loc, item int64) repository.StockKey {
	return repository.StockKey{LocationID: loc, ItemVariantID: item, Condition: entity.ConditionGood}
}

// Escenario: existencia 10 → consumo 4 → 6; consumo 10 → stock insuficiente sin cambios.
func TestRecordMovement_EscenarioConsumo(t *testing.T) {
	store := newMemStore()
	store.seed(1, 5, entity.ConditionGood, 10, 0)
	uc := newTestUseCase(store)
	ctx := context.Background()

	res, err := uc.RecordMovement(ctx, MovementInput{
		LocationID: 1, ItemVariantID: 5, Type: entity.MovementTypeConsume, Quantity: 4, ResponsiblePartyID: "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, res.NewQuantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeConsume, store.movements[0].Type)
	assert.Equal(t, 4, store.movements[0].Quantity)
	assert.Equal(t, entity.ConditionGood, store.movements[0].Condition)
	assert.Equal(t, fixedNow, store.stock[goodKey(1, 5)].LastUpdated)

	_, err = uc.RecordMovement(ctx, MovementInput{
		LocationID: 1, ItemVariantID: 5, Type: entity.MovementTypeConsume, Quantity: 10, ResponsiblePartyID: "u-1",
	})
	require.Error(t, err)
	var ise *domain.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 6, ise.Available)
	assert.Equal(t, 10, ise.Requested)

	assert.Equal(t, 6, store.stock[goodKey(1, 5)].CurrentQuantity, "la existencia no cambia")
	assert.Len(t, store.movements, 1, "no se agrega movimiento")
}

func TestRecordMovement_SalidasRechazadasNoEscriben(t *testing.T) {
	for _, tp := range []string{
		entity.MovementTypeWithdraw, entity.MovementTypeConsume,
		entity.MovementTypeWriteOff, entity.MovementTypeTransfer,
	} {
		t.Run(tp, func(t *testing.T) {
			store := newMemStore()
			store.seed(2, 7, entity.ConditionGood, 3, 0)
			uc := newTestUseCase(store)

			_, err := uc.RecordMovement(context.Background(), MovementInput{
				LocationID: 2, ItemVariantID: 7, Type: tp, Quantity: 4,
			})
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			assert.Equal(t, 3, store.stock[goodKey(2, 7)].CurrentQuantity)
			assert.Empty(t, store.movements)
		})
	}
}

func TestRecordMovement_EntregaSinExistenciaPrevia(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)

	res, err := uc.RecordMovement(context.Background(), MovementInput{
		LocationID: 3, ItemVariantID: 9, Type: entity.MovementTypeDeliver, Quantity: 12, Condition: "  BUENO ",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, res.NewQuantity)
	assert.Equal(t, 12, store.stock[goodKey(3, 9)].CurrentQuantity)
	require.Len(t, store.movements, 1)
	assert.Equal(t, int64(1), res.Movement.ID)
}

func TestRecordMovement_EntregaConservaMinimo(t *testing.T) {
	store := newMemStore()
	store.seed(1, 1, entity.ConditionGood, 2, 5)
	uc := newTestUseCase(store)

	res, err := uc.RecordMovement(context.Background(), MovementInput{
		LocationID: 1, ItemVariantID: 1, Type: entity.MovementTypeDeliver, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.NewQuantity)
	assert.Equal(t, 5, store.stock[goodKey(1, 1)].MinimumQuantity)
}

// Repetir la misma llamada duplica el efecto: el registro no es idempotente.
func TestRecordMovement_ReplayDuplicaEfecto(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store)
	in := MovementInput{LocationID: 1, ItemVariantID: 2, Type: entity.MovementTypeDeliver, Quantity: 5}

	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)
	res, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 10, res.NewQuantity)
	assert.Len(t, store.movements, 2)
}

func TestRecordMovement_CondicionSeparaExistencias(t *testing.T) {
	store := newMemStore()
	store.seed(1, 5, entity.ConditionGood, 10, 0)
	uc := newTestUseCase(store)

	_, err := uc.RecordMovement(context.Background(), MovementInput{
		LocationID: 1, ItemVariantID: 5, Type: entity.MovementTypeWriteOff, Quantity: 1, Condition: entity.ConditionDamaged,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "la existencia en buen estado no cubre la condición dañado")
}

func TestRecordMovement_ValidacionDeEntrada(t *testing.T) {
	uc := newTestUseCase(newMemStore())
	cases := map[string]MovementInput{
		"sin puesto":        {ItemVariantID: 1, Type: entity.MovementTypeDeliver, Quantity: 1},
		"sin elemento":      {LocationID: 1, Type: entity.MovementTypeDeliver, Quantity: 1},
		"tipo invalido":     {LocationID: 1, ItemVariantID: 1, Type: "prestamo", Quantity: 1},
		"cantidad cero":     {LocationID: 1, ItemVariantID: 1, Type: entity.MovementTypeDeliver},
		"cantidad negativa": {LocationID: 1, ItemVariantID: 1, Type: entity.MovementTypeDeliver, Quantity: -2},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.RecordMovement(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordMovement_FalloUpsertRevierteLibro(t *testing.T) {
	store := newMemStore()
	store.seed(1, 5, entity.ConditionGood, 10, 0)
	store.failUpsert = errStore
	uc := newTestUseCase(store)

	_, err := uc.RecordMovement(context.Background(), MovementInput{
		LocationID: 1, ItemVariantID: 5, Type: entity.MovementTypeConsume, Quantity: 1,
	})
	assert.ErrorIs(t, err, errStore)
	assert.Empty(t, store.movements, "la transacción descarta el movimiento")
	assert.Equal(t, 10, store.stock[goodKey(1, 5)].CurrentQuantity)
}
