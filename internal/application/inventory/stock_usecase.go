package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// reportMovementsLimit cantidad de movimientos recientes incluidos en el reporte PDF.
const reportMovementsLimit = 50

// StockUseCase consultas de existencias, libro de movimientos y reporte por puesto.
type StockUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
	reports   StockReportGenerator
}

// NewStockUseCase construye el caso de uso. reports puede ser nil (reporte deshabilitado).
func NewStockUseCase(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	reports StockReportGenerator,
) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, movRepo: movRepo, reports: reports}
}

// ListByLocation devuelve todas las existencias de un puesto.
func (uc *StockUseCase) ListByLocation(ctx context.Context, locationID int64) ([]*entity.StockSnapshot, error) {
	if locationID <= 0 {
		return nil, domain.Invalid("puesto_id", "es requerido")
	}
	return uc.stockRepo.ListByLocation(ctx, locationID)
}

// Get devuelve la existencia de una clave; ErrNotFound si no hay fila.
func (uc *StockUseCase) Get(ctx context.Context, key repository.StockKey) (*entity.StockSnapshot, error) {
	key.Condition = NormalizeCondition(key.Condition)
	s, err := uc.stockRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// ListMovements lista el libro de movimientos de un puesto (más recientes primero).
func (uc *StockUseCase) ListMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementRecord, error) {
	if f.LocationID <= 0 {
		return nil, domain.Invalid("puesto_id", "es requerido")
	}
	return uc.movRepo.List(ctx, f)
}

// SetMinimum fija la cantidad mínima (referencial) de una existencia.
func (uc *StockUseCase) SetMinimum(ctx context.Context, key repository.StockKey, minimum int) error {
	if minimum < 0 {
		return domain.Invalid("minimum_quantity", "no puede ser negativo")
	}
	key.Condition = NormalizeCondition(key.Condition)
	return uc.stockRepo.SetMinimum(ctx, key, minimum)
}

// BelowMinimum devuelve las existencias por debajo del mínimo, ordenadas por déficit (mayor primero).
func (uc *StockUseCase) BelowMinimum(ctx context.Context) ([]*entity.StockSnapshot, error) {
	list, err := uc.stockRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		di := list[i].MinimumQuantity - list[i].CurrentQuantity
		dj := list[j].MinimumQuantity - list[j].CurrentQuantity
		return di > dj
	})
	return list, nil
}

// StockReport genera el PDF de existencias y últimos movimientos de un puesto.
func (uc *StockUseCase) StockReport(ctx context.Context, locationID int64) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("reporte de inventario no configurado")
	}
	stock, err := uc.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.List(ctx, repository.MovementFilter{LocationID: locationID, Limit: reportMovementsLimit})
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateStockReport(ctx, locationID, stock, movs, time.Now())
}
