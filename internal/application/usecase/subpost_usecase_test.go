package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

type memSubPosts struct {
	subPosts    map[int64]*entity.SubPost
	assignments []*entity.GuardAssignment
	nextID      int64
}

func newMemSubPosts() *memSubPosts {
	return &memSubPosts{subPosts: map[int64]*entity.SubPost{}}
}

func (m *memSubPosts) Create(_ context.Context, s *entity.SubPost) error {
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.subPosts[s.ID] = &cp
	return nil
}

func (m *memSubPosts) GetByID(_ context.Context, id int64) (*entity.SubPost, error) {
	s, ok := m.subPosts[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSubPosts) Update(_ context.Context, s *entity.SubPost) error {
	cp := *s
	m.subPosts[s.ID] = &cp
	return nil
}

func (m *memSubPosts) List(_ context.Context, _, _ int) ([]*entity.SubPost, error) {
	var out []*entity.SubPost
	for _, s := range m.subPosts {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSubPosts) Delete(_ context.Context, id int64) error {
	delete(m.subPosts, id)
	return nil
}

func (m *memSubPosts) CreateAssignment(_ context.Context, a *entity.GuardAssignment) error {
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.assignments = append(m.assignments, &cp)
	return nil
}

func (m *memSubPosts) ListAssignments(_ context.Context, subPostID int64, activeOnly bool) ([]*entity.GuardAssignment, error) {
	var out []*entity.GuardAssignment
	for _, a := range m.assignments {
		if a.SubPostID == subPostID && (!activeOnly || a.Active) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memSubPosts) EndAssignment(_ context.Context, id int64) error {
	for _, a := range m.assignments {
		if a.ID == id {
			a.Active = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestAssignGuard_Capacity(t *testing.T) {
	repo := newMemSubPosts()
	uc := NewSubPostUseCase(repo)
	ctx := context.Background()

	sp, err := uc.Create(ctx, dto.CreateSubPostRequest{PostID: 1, Name: "Portería", RequiredGuards: 2})
	require.NoError(t, err)

	first, err := uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 10})
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.False(t, first.StartDate.IsZero())

	_, err = uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 10})
	assert.ErrorIs(t, err, domain.ErrConflict, "el mismo guarda no se asigna dos veces")

	_, err = uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 11})
	require.NoError(t, err)

	_, err = uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 12})
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, uc.EndAssignment(ctx, first.ID))
	_, err = uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 12})
	assert.NoError(t, err)

	active, err := uc.ListAssignments(ctx, sp.ID, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestAssignGuard_InactiveOrMissing(t *testing.T) {
	repo := newMemSubPosts()
	uc := NewSubPostUseCase(repo)
	ctx := context.Background()

	_, err := uc.AssignGuard(ctx, 99, dto.AssignGuardRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sp, err := uc.Create(ctx, dto.CreateSubPostRequest{PostID: 1, Name: "Parqueadero", RequiredGuards: 1})
	require.NoError(t, err)
	off := false
	_, err = uc.Update(ctx, sp.ID, dto.UpdateSubPostRequest{Active: &off})
	require.NoError(t, err)

	_, err = uc.AssignGuard(ctx, sp.ID, dto.AssignGuardRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateSubPost_NegativeGuards(t *testing.T) {
	uc := NewSubPostUseCase(newMemSubPosts())
	ctx := context.Background()
	sp, err := uc.Create(ctx, dto.CreateSubPostRequest{PostID: 1, Name: "Lobby", RequiredGuards: 1})
	require.NoError(t, err)

	n := -1
	_, err = uc.Update(ctx, sp.ID, dto.UpdateSubPostRequest{RequiredGuards: &n})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
