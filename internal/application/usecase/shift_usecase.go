package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// ShiftUseCase casos de uso CRUD para turnos.
type ShiftUseCase struct {
	repo     repository.ShiftRepository
	subPosts repository.SubPostRepository
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository, subPosts repository.SubPostRepository) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, subPosts: subPosts}
}

// Create programa un turno en un subpuesto existente.
func (uc *ShiftUseCase) Create(ctx context.Context, in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	sp, err := uc.subPosts.GetByID(ctx, in.SubPostID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.Invalid("subpuesto_id", "el subpuesto no existe")
	}
	now := time.Now()
	s := &entity.Shift{
		EmployeeID: in.EmployeeID,
		SubPostID:  in.SubPostID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Type:       in.Type,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toShiftResponse(s), nil
}

func (uc *ShiftUseCase) GetByID(ctx context.Context, id int64) (*dto.ShiftResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toShiftResponse(s), nil
}

func (uc *ShiftUseCase) Update(ctx context.Context, id int64, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.EmployeeID != nil {
		s.EmployeeID = *in.EmployeeID
	}
	if in.Date != nil {
		s.Date = *in.Date
	}
	if in.StartTime != nil {
		s.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		s.EndTime = *in.EndTime
	}
	if in.Type != nil {
		s.Type = *in.Type
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toShiftResponse(s), nil
}

// List lista turnos, opcionalmente de un subpuesto.
func (uc *ShiftUseCase) List(ctx context.Context, subPostID *int64, limit, offset int) (*dto.ListResponse[dto.ShiftResponse], error) {
	list, err := uc.repo.List(ctx, subPostID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShiftResponse(s))
	}
	return &dto.ListResponse[dto.ShiftResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *ShiftUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		SubPostID:  s.SubPostID,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Type:       s.Type,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
