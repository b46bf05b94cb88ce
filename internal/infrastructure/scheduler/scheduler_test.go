package scheduler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

type fakeSource struct {
	list []*entity.StockSnapshot
	err  error
}

func (f fakeSource) BelowMinimum(context.Context) ([]*entity.StockSnapshot, error) {
	return f.list, f.err
}

func TestCheckLowStock_LogsEachSnapshot(t *testing.T) {
	buf := &bytes.Buffer{}
	s := New(fakeSource{list: []*entity.StockSnapshot{
		{LocationID: 1, ItemVariantID: 10, Condition: "bueno", CurrentQuantity: 1, MinimumQuantity: 4},
		{LocationID: 2, ItemVariantID: 11, Condition: "bueno", CurrentQuantity: 0, MinimumQuantity: 2},
	}}, zerolog.New(buf))

	s.checkLowStock()

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "existencia bajo mínimo"))
	assert.Contains(t, out, `"total":2`)
}

func TestCheckLowStock_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	s := New(fakeSource{err: errors.New("db caída")}, zerolog.New(buf))

	s.checkLowStock()

	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New(fakeSource{}, zerolog.Nop())
	assert.Error(t, s.Start("no es cron"))
}

func TestStart_EmptySpecDisables(t *testing.T) {
	s := New(fakeSource{}, zerolog.Nop())
	require.NoError(t, s.Start(""))
	assert.Empty(t, s.cron.Entries())
	s.Stop()
}
