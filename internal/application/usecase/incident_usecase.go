package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// IncidentUseCase casos de uso CRUD para incidentes.
type IncidentUseCase struct {
	repo repository.IncidentRepository
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(repo repository.IncidentRepository) *IncidentUseCase {
	return &IncidentUseCase{repo: repo}
}

// Create registra un incidente abierto reportado por el usuario autenticado.
func (uc *IncidentUseCase) Create(ctx context.Context, reportedBy string, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	now := time.Now()
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}
	i := &entity.Incident{
		PostID:      in.PostID,
		ReportedBy:  reportedBy,
		Type:        in.Type,
		Description: in.Description,
		Severity:    in.Severity,
		OccurredAt:  occurred,
		Status:      entity.IncidentOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return toIncidentResponse(i), nil
}

func (uc *IncidentUseCase) GetByID(ctx context.Context, id int64) (*dto.IncidentResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	return toIncidentResponse(i), nil
}

func (uc *IncidentUseCase) Update(ctx context.Context, id int64, in dto.UpdateIncidentRequest) (*dto.IncidentResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		i.Type = *in.Type
	}
	if in.Description != nil {
		i.Description = *in.Description
	}
	if in.Severity != nil {
		i.Severity = *in.Severity
	}
	if in.Status != nil {
		if *in.Status != entity.IncidentOpen && *in.Status != entity.IncidentClosed {
			return nil, domain.Invalid("estado", "debe ser abierto o cerrado")
		}
		i.Status = *in.Status
	}
	i.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return toIncidentResponse(i), nil
}

func (uc *IncidentUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.IncidentResponse], error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIncidentResponse(i))
	}
	return &dto.ListResponse[dto.IncidentResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *IncidentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	return &dto.IncidentResponse{
		ID:          i.ID,
		PostID:      i.PostID,
		ReportedBy:  i.ReportedBy,
		Type:        i.Type,
		Description: i.Description,
		Severity:    i.Severity,
		OccurredAt:  i.OccurredAt,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
