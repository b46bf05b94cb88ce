package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// ContractUseCase casos de uso CRUD para contratos.
type ContractUseCase struct {
	repo    repository.ContractRepository
	clients repository.ClientRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository, clients repository.ClientRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo, clients: clients}
}

// Create crea un contrato activo para un cliente existente.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.Invalid("cliente_id", "el cliente no existe")
	}
	now := time.Now()
	c := &entity.Contract{
		ClientID:  in.ClientID,
		Number:    in.Number,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Value:     in.Value,
		Status:    entity.ContractActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// GetByID obtiene un contrato por ID.
func (uc *ContractUseCase) GetByID(ctx context.Context, id int64) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContractResponse(c), nil
}

// Update actualiza fecha de fin, valor o estado.
func (uc *ContractUseCase) Update(ctx context.Context, id int64, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	if in.Value != nil {
		c.Value = *in.Value
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// List lista contratos, opcionalmente de un cliente.
func (uc *ContractUseCase) List(ctx context.Context, clientID *int64, limit, offset int) (*dto.ListResponse[dto.ContractResponse], error) {
	list, err := uc.repo.List(ctx, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c))
	}
	return &dto.ListResponse[dto.ContractResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un contrato por ID.
func (uc *ContractUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Number:    c.Number,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Value:     c.Value,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
