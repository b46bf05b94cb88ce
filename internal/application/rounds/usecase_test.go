package rounds

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

type memRounds struct {
	rounds     map[int64]*entity.RoundDefinition
	executions map[int64]int
	nextID     int64
}

func (m *memRounds) Create(_ context.Context, r *entity.RoundDefinition) error {
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.rounds[r.ID] = &cp
	return nil
}

func (m *memRounds) GetByID(_ context.Context, id int64) (*entity.RoundDefinition, error) {
	r, ok := m.rounds[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRounds) Update(_ context.Context, r *entity.RoundDefinition) error {
	cp := *r
	m.rounds[r.ID] = &cp
	return nil
}

func (m *memRounds) List(_ context.Context, limit, offset int) ([]*entity.RoundDefinition, error) {
	var out []*entity.RoundDefinition
	for _, r := range m.rounds {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRounds) Delete(_ context.Context, id int64) error {
	delete(m.rounds, id)
	return nil
}

func (m *memRounds) CountExecutions(_ context.Context, roundID int64) (int, error) {
	return m.executions[roundID], nil
}

type memPoints struct {
	points map[int64]*entity.RoundCheckpoint
	nextID int64
}

func (m *memPoints) Create(_ context.Context, cp *entity.RoundCheckpoint) error {
	m.nextID++
	cp.ID = m.nextID
	c := *cp
	m.points[cp.ID] = &c
	return nil
}

func (m *memPoints) GetByID(_ context.Context, id int64) (*entity.RoundCheckpoint, error) {
	cp, ok := m.points[id]
	if !ok {
		return nil, nil
	}
	c := *cp
	return &c, nil
}

func (m *memPoints) FindByOrder(_ context.Context, roundID int64, order int) (*entity.RoundCheckpoint, error) {
	for _, cp := range m.points {
		if cp.RoundID == roundID && cp.Order == order {
			c := *cp
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memPoints) ListByRound(_ context.Context, roundID int64) ([]*entity.RoundCheckpoint, error) {
	var out []*entity.RoundCheckpoint
	for _, cp := range m.points {
		if cp.RoundID == roundID {
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memPoints) Update(_ context.Context, cp *entity.RoundCheckpoint) error {
	c := *cp
	m.points[cp.ID] = &c
	return nil
}

func (m *memPoints) Delete(_ context.Context, id int64) error {
	delete(m.points, id)
	return nil
}

func newFixture(t *testing.T, policy Policy) (*UseCase, *memRounds, *memPoints, *bytes.Buffer) {
	t.Helper()
	rounds := &memRounds{rounds: map[int64]*entity.RoundDefinition{}, executions: map[int64]int{}}
	points := &memPoints{points: map[int64]*entity.RoundCheckpoint{}}
	buf := &bytes.Buffer{}
	uc := NewUseCase(rounds, points, policy, zerolog.New(buf))
	return uc, rounds, points, buf
}

func createRound(t *testing.T, uc *UseCase) int64 {
	t.Helper()
	r, err := uc.Create(context.Background(), dto.CreateRoundRequest{Name: "Perímetro norte"})
	require.NoError(t, err)
	return r.ID
}

func TestAddCheckpoint_DuplicateOrder(t *testing.T) {
	uc, _, points, _ := newFixture(t, Policy{})
	ctx := context.Background()
	id := createRound(t, uc)

	for i := 1; i <= 3; i++ {
		_, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: i, Name: "P"})
		require.NoError(t, err)
	}

	_, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 2, Name: "Repetido"})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
	assert.Len(t, points.points, 3)
}

func TestAddCheckpoint_SameOrderOtherRound(t *testing.T) {
	uc, _, _, _ := newFixture(t, Policy{})
	ctx := context.Background()
	a := createRound(t, uc)
	b := createRound(t, uc)

	_, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: a, Order: 1, Name: "A1"})
	require.NoError(t, err)
	_, err = uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: b, Order: 1, Name: "B1"})
	assert.NoError(t, err)
}

func TestAddCheckpoint_UnknownRound(t *testing.T) {
	uc, _, _, _ := newFixture(t, Policy{})
	_, err := uc.AddCheckpoint(context.Background(), dto.CreateCheckpointRequest{RoundID: 99, Order: 1, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddCheckpoint_HistoryWarns(t *testing.T) {
	uc, rounds, points, logs := newFixture(t, Policy{})
	ctx := context.Background()
	id := createRound(t, uc)
	rounds.executions[id] = 4

	out, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 1, Name: "Portería"})
	require.NoError(t, err)
	assert.Equal(t, 4, out.ExecutionHistory)
	assert.NotEmpty(t, out.Warning)
	assert.NotNil(t, out.Checkpoint)
	assert.Len(t, points.points, 1)
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestAddCheckpoint_HistoryBlocks(t *testing.T) {
	uc, rounds, points, _ := newFixture(t, Policy{BlockWithHistory: true})
	ctx := context.Background()
	id := createRound(t, uc)
	rounds.executions[id] = 1

	_, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 1, Name: "Portería"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, points.points)
}

func TestAddCheckpoint_NoHistoryNoWarning(t *testing.T) {
	uc, _, _, logs := newFixture(t, Policy{BlockWithHistory: true})
	id := createRound(t, uc)

	out, err := uc.AddCheckpoint(context.Background(), dto.CreateCheckpointRequest{RoundID: id, Order: 1, Name: "Portería"})
	require.NoError(t, err)
	assert.Zero(t, out.ExecutionHistory)
	assert.Empty(t, out.Warning)
	assert.Empty(t, logs.String())
}

func TestUpdateCheckpoint_Order(t *testing.T) {
	uc, _, _, _ := newFixture(t, Policy{})
	ctx := context.Background()
	id := createRound(t, uc)
	first, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 1, Name: "P1"})
	require.NoError(t, err)
	_, err = uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 2, Name: "P2"})
	require.NoError(t, err)

	taken := 2
	_, err = uc.UpdateCheckpoint(ctx, first.Checkpoint.ID, dto.UpdateCheckpointRequest{Order: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	same := 1
	name := "Portería principal"
	out, err := uc.UpdateCheckpoint(ctx, first.Checkpoint.ID, dto.UpdateCheckpointRequest{Order: &same, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Portería principal", out.Checkpoint.Name)

	free := 5
	out, err = uc.UpdateCheckpoint(ctx, first.Checkpoint.ID, dto.UpdateCheckpointRequest{Order: &free})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Checkpoint.Order)
}

func TestDeleteCheckpoint_HistoryBlocks(t *testing.T) {
	uc, rounds, points, _ := newFixture(t, Policy{BlockWithHistory: true})
	ctx := context.Background()
	id := createRound(t, uc)
	cp, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: 1, Name: "P1"})
	require.NoError(t, err)
	rounds.executions[id] = 2

	_, err = uc.DeleteCheckpoint(ctx, cp.Checkpoint.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, points.points, 1)
}

func TestListCheckpoints_Ordered(t *testing.T) {
	uc, _, _, _ := newFixture(t, Policy{})
	ctx := context.Background()
	id := createRound(t, uc)
	for _, o := range []int{3, 1, 2} {
		_, err := uc.AddCheckpoint(ctx, dto.CreateCheckpointRequest{RoundID: id, Order: o, Name: "P"})
		require.NoError(t, err)
	}

	list, err := uc.ListCheckpoints(ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Order, list[1].Order, list[2].Order})
}

func TestRoundCRUD(t *testing.T) {
	uc, _, _, _ := newFixture(t, Policy{})
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateRoundRequest{Name: "Nocturna"})
	require.NoError(t, err)
	assert.True(t, created.Active)

	off := false
	updated, err := uc.Update(ctx, created.ID, dto.UpdateRoundRequest{Active: &off})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
