package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

type fakeReport struct {
	locationID int64
	stock      int
	movements  int
}

func (f *fakeReport) GenerateStockReport(_ context.Context, loc int64, stock []*entity.StockSnapshot, movs []*entity.MovementRecord, _ time.Time) ([]byte, error) {
	f.locationID = loc
	f.stock = len(stock)
	f.movements = len(movs)
	return []byte("%PDF-"), nil
}

func TestBelowMinimum_OrdenaPorDeficit(t *testing.T) {
	store := newMemStore()
	store.seed(1, 1, entity.ConditionGood, 4, 5)  // déficit 1
	store.seed(1, 2, entity.ConditionGood, 0, 10) // déficit 10
	store.seed(2, 3, entity.ConditionGood, 9, 3)  // sobre el mínimo
	store.seed(2, 4, entity.ConditionGood, 0, 0)  // sin mínimo
	uc := NewStockUseCase(store, store, nil)

	list, err := uc.BelowMinimum(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ItemVariantID)
	assert.Equal(t, int64(1), list[1].ItemVariantID)
}

func TestGet_SinFilaEsNotFound(t *testing.T) {
	uc := NewStockUseCase(newMemStore(), newMemStore(), nil)
	_, err := uc.Get(context.Background(), repository.StockKey{LocationID: 1, ItemVariantID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetMinimum(t *testing.T) {
	store := newMemStore()
	uc := NewStockUseCase(store, store, nil)

	assert.ErrorIs(t, uc.SetMinimum(context.Background(), goodKey(1, 1), -1), domain.ErrInvalidInput)
	require.NoError(t, uc.SetMinimum(context.Background(), repository.StockKey{LocationID: 1, ItemVariantID: 1}, 7))
	assert.Equal(t, 7, store.stock[goodKey(1, 1)].MinimumQuantity)
}

func TestStockReport(t *testing.T) {
	store := newMemStore()
	store.seed(4, 1, entity.ConditionGood, 3, 0)
	store.seed(4, 2, entity.ConditionDamaged, 1, 0)
	rec := newTestUseCase(store)
	_, err := rec.RecordMovement(context.Background(), MovementInput{LocationID: 4, ItemVariantID: 1, Type: entity.MovementTypeConsume, Quantity: 1})
	require.NoError(t, err)

	gen := &fakeReport{}
	uc := NewStockUseCase(store, store, gen)
	pdf, err := uc.StockReport(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), pdf)
	assert.Equal(t, int64(4), gen.locationID)
	assert.Equal(t, 2, gen.stock)
	assert.Equal(t, 1, gen.movements)
}

func TestStockReport_SinGenerador(t *testing.T) {
	uc := NewStockUseCase(newMemStore(), newMemStore(), nil)
	_, err := uc.StockReport(context.Background(), 1)
	assert.Error(t, err)
}
