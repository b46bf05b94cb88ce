package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// EPSUseCase casos de uso CRUD para EPS.
type EPSUseCase struct {
	repo repository.EPSRepository
}

// NewEPSUseCase construye el caso de uso.
func NewEPSUseCase(repo repository.EPSRepository) *EPSUseCase {
	return &EPSUseCase{repo: repo}
}

func (uc *EPSUseCase) Create(ctx context.Context, in dto.CreateEPSRequest) (*dto.EPSResponse, error) {
	e := &entity.EPS{Name: in.Name, Code: in.Code, Active: true, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEPSResponse(e), nil
}

func (uc *EPSUseCase) GetByID(ctx context.Context, id int64) (*dto.EPSResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEPSResponse(e), nil
}

func (uc *EPSUseCase) Update(ctx context.Context, id int64, in dto.UpdateEPSRequest) (*dto.EPSResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Code != nil {
		e.Code = *in.Code
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEPSResponse(e), nil
}

func (uc *EPSUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.EPSResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EPSResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEPSResponse(e))
	}
	return &dto.ListResponse[dto.EPSResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *EPSUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toEPSResponse(e *entity.EPS) *dto.EPSResponse {
	return &dto.EPSResponse{ID: e.ID, Name: e.Name, Code: e.Code, Active: e.Active, CreatedAt: e.CreatedAt}
}
