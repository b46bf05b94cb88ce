package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "25.000", formatThousands(25000))
	assert.Equal(t, "1.000.000", formatThousands(1000000))
	assert.Equal(t, "-1.500", formatThousands(-1500))
}

func TestGenerateStockReport(t *testing.T) {
	g := NewStockReportGenerator("Vigilancia Test")
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	stock := []*entity.StockSnapshot{
		{LocationID: 7, ItemVariantID: 1, Condition: entity.ConditionGood, CurrentQuantity: 3, MinimumQuantity: 5},
		{LocationID: 7, ItemVariantID: 2, Condition: entity.ConditionDamaged, CurrentQuantity: 1},
	}
	movements := []*entity.MovementRecord{
		{LocationID: 7, ItemVariantID: 1, Type: entity.MovementTypeConsume, Quantity: 2, Condition: entity.ConditionGood, CreatedAt: at},
	}

	b, err := g.GenerateStockReport(context.Background(), 7, stock, movements, at)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestGenerateStockReport_Empty(t *testing.T) {
	b, err := NewStockReportGenerator("").GenerateStockReport(context.Background(), 1, nil, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
