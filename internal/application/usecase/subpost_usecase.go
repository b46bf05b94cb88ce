package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// SubPostUseCase casos de uso de subpuestos y asignación de guardas.
type SubPostUseCase struct {
	repo repository.SubPostRepository
}

// NewSubPostUseCase construye el caso de uso.
func NewSubPostUseCase(repo repository.SubPostRepository) *SubPostUseCase {
	return &SubPostUseCase{repo: repo}
}

func (uc *SubPostUseCase) Create(ctx context.Context, in dto.CreateSubPostRequest) (*dto.SubPostResponse, error) {
	now := time.Now()
	s := &entity.SubPost{
		PostID:         in.PostID,
		Name:           in.Name,
		RequiredGuards: in.RequiredGuards,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSubPostResponse(s), nil
}

func (uc *SubPostUseCase) GetByID(ctx context.Context, id int64) (*dto.SubPostResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSubPostResponse(s), nil
}

func (uc *SubPostUseCase) Update(ctx context.Context, id int64, in dto.UpdateSubPostRequest) (*dto.SubPostResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.RequiredGuards != nil {
		if *in.RequiredGuards < 0 {
			return nil, domain.Invalid("guardas_requeridos", "no puede ser negativo")
		}
		s.RequiredGuards = *in.RequiredGuards
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSubPostResponse(s), nil
}

func (uc *SubPostUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.SubPostResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubPostResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubPostResponse(s))
	}
	return &dto.ListResponse[dto.SubPostResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *SubPostUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// AssignGuard asigna un guarda al subpuesto. Se rechaza con domain.ErrConflict si el
// subpuesto está inactivo, si ya tiene guardas_requeridos asignaciones activas o si el
// guarda ya está asignado.
func (uc *SubPostUseCase) AssignGuard(ctx context.Context, subPostID int64, in dto.AssignGuardRequest) (*dto.GuardAssignmentResponse, error) {
	s, err := uc.get(ctx, subPostID)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, fmt.Errorf("%w: el subpuesto %d está inactivo", domain.ErrConflict, subPostID)
	}
	active, err := uc.repo.ListAssignments(ctx, subPostID, true)
	if err != nil {
		return nil, err
	}
	for _, a := range active {
		if a.EmployeeID == in.EmployeeID {
			return nil, fmt.Errorf("%w: el guarda %d ya está asignado", domain.ErrConflict, in.EmployeeID)
		}
	}
	if len(active) >= s.RequiredGuards {
		return nil, fmt.Errorf("%w: el subpuesto %d ya tiene %d de %d guardas", domain.ErrConflict, subPostID, len(active), s.RequiredGuards)
	}
	start := in.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	a := &entity.GuardAssignment{
		SubPostID:  subPostID,
		EmployeeID: in.EmployeeID,
		StartDate:  start,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.CreateAssignment(ctx, a); err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// ListAssignments lista asignaciones del subpuesto.
func (uc *SubPostUseCase) ListAssignments(ctx context.Context, subPostID int64, activeOnly bool) ([]dto.GuardAssignmentResponse, error) {
	if _, err := uc.get(ctx, subPostID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAssignments(ctx, subPostID, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GuardAssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAssignmentResponse(a))
	}
	return out, nil
}

// EndAssignment finaliza (desactiva) una asignación.
func (uc *SubPostUseCase) EndAssignment(ctx context.Context, assignmentID int64) error {
	return uc.repo.EndAssignment(ctx, assignmentID)
}

func (uc *SubPostUseCase) get(ctx context.Context, id int64) (*entity.SubPost, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func toSubPostResponse(s *entity.SubPost) *dto.SubPostResponse {
	return &dto.SubPostResponse{
		ID:             s.ID,
		PostID:         s.PostID,
		Name:           s.Name,
		RequiredGuards: s.RequiredGuards,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toAssignmentResponse(a *entity.GuardAssignment) *dto.GuardAssignmentResponse {
	return &dto.GuardAssignmentResponse{
		ID:         a.ID,
		SubPostID:  a.SubPostID,
		EmployeeID: a.EmployeeID,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
		Active:     a.Active,
	}
}
