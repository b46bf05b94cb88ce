package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// memStore almacén en memoria que implementa los repos de stock y movimientos.
type memStore struct {
	stock     map[repository.StockKey]entity.StockSnapshot
	movements []entity.MovementRecord
	nextID    int64

	failUpsert error
	reads      int
}

func newMemStore() *memStore {
	return &memStore{stock: map[repository.StockKey]entity.StockSnapshot{}}
}

func (m *memStore) seed(loc, item int64, cond string, qty, min int) {
	k := repository.StockKey{LocationID: loc, ItemVariantID: item, Condition: cond}
	m.stock[k] = entity.StockSnapshot{
		LocationID: loc, ItemVariantID: item, Condition: cond,
		CurrentQuantity: qty, MinimumQuantity: min,
	}
}

func (m *memStore) Get(_ context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	m.reads++
	s, ok := m.stock[key]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStore) GetForUpdate(ctx context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	return m.Get(ctx, key)
}

func (m *memStore) Upsert(_ context.Context, s *entity.StockSnapshot) error {
	if m.failUpsert != nil {
		return m.failUpsert
	}
	m.stock[repository.StockKey{LocationID: s.LocationID, ItemVariantID: s.ItemVariantID, Condition: s.Condition}] = *s
	return nil
}

func (m *memStore) ListByLocation(_ context.Context, loc int64) ([]*entity.StockSnapshot, error) {
	var out []*entity.StockSnapshot
	for _, s := range m.stock {
		if s.LocationID == loc {
			s := s
			out = append(out, &s)
		}
	}
	return out, nil
}

func (m *memStore) ListBelowMinimum(_ context.Context) ([]*entity.StockSnapshot, error) {
	var out []*entity.StockSnapshot
	for _, s := range m.stock {
		if s.BelowMinimum() {
			s := s
			out = append(out, &s)
		}
	}
	return out, nil
}

func (m *memStore) SetMinimum(_ context.Context, key repository.StockKey, min int) error {
	s, ok := m.stock[key]
	if !ok {
		s = entity.StockSnapshot{LocationID: key.LocationID, ItemVariantID: key.ItemVariantID, Condition: key.Condition}
	}
	s.MinimumQuantity = min
	m.stock[key] = s
	return nil
}

func (m *memStore) Append(_ context.Context, mov *entity.MovementRecord) error {
	m.nextID++
	mov.ID = m.nextID
	m.movements = append(m.movements, *mov)
	return nil
}

func (m *memStore) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementRecord, error) {
	var out []*entity.MovementRecord
	for i := len(m.movements) - 1; i >= 0; i-- {
		mv := m.movements[i]
		if mv.LocationID != f.LocationID {
			continue
		}
		if f.ItemVariantID != nil && mv.ItemVariantID != *f.ItemVariantID {
			continue
		}
		out = append(out, &mv)
	}
	return out, nil
}

// memTx simula la transacción: si fn falla se restaura el estado previo.
type memTx struct {
	store *memStore
}

func (t memTx) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockRepository) error) error {
	stockBackup := make(map[repository.StockKey]entity.StockSnapshot, len(t.store.stock))
	for k, v := range t.store.stock {
		stockBackup[k] = v
	}
	movBackup := append([]entity.MovementRecord(nil), t.store.movements...)
	if err := fn(t.store, t.store); err != nil {
		t.store.stock = stockBackup
		t.store.movements = movBackup
		return err
	}
	return nil
}

var errStore = errors.New("fallo de almacenamiento")

var fixedNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
