package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// NoveltyUseCase casos de uso CRUD para novedades de personal.
type NoveltyUseCase struct {
	repo repository.NoveltyRepository
}

// NewNoveltyUseCase construye el caso de uso.
func NewNoveltyUseCase(repo repository.NoveltyRepository) *NoveltyUseCase {
	return &NoveltyUseCase{repo: repo}
}

func (uc *NoveltyUseCase) Create(ctx context.Context, in dto.CreateNoveltyRequest) (*dto.NoveltyResponse, error) {
	n := &entity.Novelty{
		EmployeeID:  in.EmployeeID,
		Type:        in.Type,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return toNoveltyResponse(n), nil
}

func (uc *NoveltyUseCase) GetByID(ctx context.Context, id int64) (*dto.NoveltyResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNoveltyResponse(n), nil
}

func (uc *NoveltyUseCase) Update(ctx context.Context, id int64, in dto.UpdateNoveltyRequest) (*dto.NoveltyResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		n.Type = *in.Type
	}
	if in.Description != nil {
		n.Description = *in.Description
	}
	if in.EndDate != nil {
		if in.EndDate.Before(n.StartDate) {
			return nil, domain.Invalid("fecha_fin", "no puede ser anterior a fecha_inicio")
		}
		n.EndDate = in.EndDate
	}
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return toNoveltyResponse(n), nil
}

func (uc *NoveltyUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.NoveltyResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoveltyResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNoveltyResponse(n))
	}
	return &dto.ListResponse[dto.NoveltyResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *NoveltyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toNoveltyResponse(n *entity.Novelty) *dto.NoveltyResponse {
	return &dto.NoveltyResponse{
		ID:          n.ID,
		EmployeeID:  n.EmployeeID,
		Type:        n.Type,
		Description: n.Description,
		StartDate:   n.StartDate,
		EndDate:     n.EndDate,
		CreatedAt:   n.CreatedAt,
	}
}
