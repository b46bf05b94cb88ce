package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// SalaryUseCase casos de uso CRUD para escalas salariales.
type SalaryUseCase struct {
	repo repository.SalaryRepository
}

// NewSalaryUseCase construye el caso de uso.
func NewSalaryUseCase(repo repository.SalaryRepository) *SalaryUseCase {
	return &SalaryUseCase{repo: repo}
}

// Create registra una escala; el valor se redondea a pesos enteros.
func (uc *SalaryUseCase) Create(ctx context.Context, in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	now := time.Now()
	s := &entity.Salary{
		Name:      in.Name,
		Amount:    in.Amount.Round(0),
		Year:      in.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSalaryResponse(s), nil
}

func (uc *SalaryUseCase) GetByID(ctx context.Context, id int64) (*dto.SalaryResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSalaryResponse(s), nil
}

func (uc *SalaryUseCase) Update(ctx context.Context, id int64, in dto.UpdateSalaryRequest) (*dto.SalaryResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.Invalid("valor", "no puede ser negativo")
		}
		s.Amount = in.Amount.Round(0)
	}
	if in.Year != nil {
		s.Year = *in.Year
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSalaryResponse(s), nil
}

func (uc *SalaryUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.SalaryResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSalaryResponse(s))
	}
	return &dto.ListResponse[dto.SalaryResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *SalaryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSalaryResponse(s *entity.Salary) *dto.SalaryResponse {
	return &dto.SalaryResponse{
		ID:        s.ID,
		Name:      s.Name,
		Amount:    s.Amount,
		Year:      s.Year,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
