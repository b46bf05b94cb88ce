package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// recordingQuerier registra el SQL ejecutado y responde QueryRow con row.
type recordingQuerier struct {
	sql     []string
	row     pgx.Row
	execErr error
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.sql = append(q.sql, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), q.execErr
}

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = append(q.sql, sql)
	return nil, errors.New("no soportado")
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = append(q.sql, sql)
	return q.row
}

type stockRow struct{ s entity.StockSnapshot }

func (r stockRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.s.LocationID
	*dest[1].(*int64) = r.s.ItemVariantID
	*dest[2].(*string) = r.s.Condition
	*dest[3].(*int) = r.s.CurrentQuantity
	*dest[4].(*int) = r.s.MinimumQuantity
	*dest[5].(*time.Time) = r.s.LastUpdated
	return nil
}

func TestGetForUpdate_CreaLaFilaAntesDeBloquear(t *testing.T) {
	q := &recordingQuerier{row: stockRow{entity.StockSnapshot{LocationID: 1, ItemVariantID: 5, Condition: "bueno"}}}
	repo := NewStockRepository(q)

	s, err := repo.GetForUpdate(context.Background(), repository.StockKey{LocationID: 1, ItemVariantID: 5, Condition: "bueno"})
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Zero(t, s.CurrentQuantity)

	require.Len(t, q.sql, 2)
	assert.Contains(t, q.sql[0], "INSERT INTO inventario_puesto")
	assert.Contains(t, q.sql[0], "DO NOTHING")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(q.sql[1]), "FOR UPDATE"))
}

func TestGetForUpdate_ErrorAlInsertar(t *testing.T) {
	q := &recordingQuerier{execErr: errors.New("conexión cerrada")}
	repo := NewStockRepository(q)

	_, err := repo.GetForUpdate(context.Background(), repository.StockKey{LocationID: 1, ItemVariantID: 5, Condition: "bueno"})
	assert.ErrorContains(t, err, "conexión cerrada")
	assert.Len(t, q.sql, 1)
}
