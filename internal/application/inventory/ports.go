package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// El libro de movimientos y la existencia se escriben en la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// StockReportGenerator genera el reporte PDF de existencias de un puesto.
type StockReportGenerator interface {
	GenerateStockReport(
		ctx context.Context,
		locationID int64,
		stock []*entity.StockSnapshot,
		movements []*entity.MovementRecord,
		generatedAt time.Time,
	) ([]byte, error)
}
