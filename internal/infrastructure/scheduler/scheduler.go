// Package scheduler tareas programadas con robfig/cron.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// LowStockSource fuente de existencias bajo mínimo (inventory.StockUseCase).
type LowStockSource interface {
	BelowMinimum(ctx context.Context) ([]*entity.StockSnapshot, error)
}

// Scheduler administra las tareas programadas.
type Scheduler struct {
	cron     *cron.Cron
	lowStock LowStockSource
	log      zerolog.Logger
	timeout  time.Duration
}

// New crea el scheduler. Usa el parser estándar de 5 campos (min, hora, día, mes, día semana).
func New(lowStock LowStockSource, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		lowStock: lowStock,
		log:      log,
		timeout:  2 * time.Minute,
	}
}

// Start registra las tareas y arranca el cron. lowStockSpec vacío desactiva la revisión de stock.
func (s *Scheduler) Start(lowStockSpec string) error {
	if lowStockSpec != "" {
		if _, err := s.cron.AddFunc(lowStockSpec, s.checkLowStock); err != nil {
			return err
		}
		s.log.Info().Str("spec", lowStockSpec).Msg("revisión de stock bajo programada")
	}
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

// checkLowStock registra una advertencia por cada existencia bajo su mínimo.
func (s *Scheduler) checkLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	list, err := s.lowStock.BelowMinimum(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("revisión de stock bajo falló")
		return
	}
	for _, st := range list {
		s.log.Warn().
			Int64("puesto_id", st.LocationID).
			Int64("item_variante_id", st.ItemVariantID).
			Str("condicion", st.Condition).
			Int("cantidad_actual", st.CurrentQuantity).
			Int("cantidad_minima", st.MinimumQuantity).
			Msg("existencia bajo mínimo")
	}
	s.log.Info().Int("total", len(list)).Msg("revisión de stock bajo completada")
}
