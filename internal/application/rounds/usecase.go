// Package rounds implementa las rondas de vigilancia y sus puntos de control.
package rounds

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Vigilancia-api/internal/application/dto"
	"github.com/jhoicas/Vigilancia-api/internal/domain"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
	"github.com/jhoicas/Vigilancia-api/internal/domain/repository"
)

// Policy reglas configurables de edición.
type Policy struct {
	// BlockWithHistory rechaza con domain.ErrConflict la edición de puntos
	// de una ronda con ejecuciones registradas. En false solo advierte.
	BlockWithHistory bool
}

const historyWarning = "la ronda tiene ejecuciones registradas; el cambio afecta la lectura del historial"

// UseCase casos de uso de rondas_definicion y rondas_puntos.
type UseCase struct {
	rounds repository.RoundRepository
	points repository.CheckpointRepository
	policy Policy
	log    zerolog.Logger
	now    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(rounds repository.RoundRepository, points repository.CheckpointRepository, policy Policy, log zerolog.Logger) *UseCase {
	return &UseCase{rounds: rounds, points: points, policy: policy, log: log, now: time.Now}
}

// Create crea una ronda (activa por defecto).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateRoundRequest) (*dto.RoundResponse, error) {
	now := uc.now()
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	r := &entity.RoundDefinition{
		Name:        in.Name,
		SubPostID:   in.SubPostID,
		Description: in.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rounds.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRoundResponse(r), nil
}

// GetByID obtiene una ronda; domain.ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.RoundResponse, error) {
	r, err := uc.getRound(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoundResponse(r), nil
}

// List lista rondas con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.RoundResponse], error) {
	list, err := uc.rounds.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoundResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoundResponse(r))
	}
	return &dto.ListResponse[dto.RoundResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update actualiza los campos enviados de una ronda.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateRoundRequest) (*dto.RoundResponse, error) {
	r, err := uc.getRound(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.SubPostID != nil {
		r.SubPostID = in.SubPostID
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Active != nil {
		r.Active = *in.Active
	}
	r.UpdatedAt = uc.now()
	if err := uc.rounds.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRoundResponse(r), nil
}

// Delete elimina una ronda.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.getRound(ctx, id); err != nil {
		return err
	}
	return uc.rounds.Delete(ctx, id)
}

// ListCheckpoints devuelve los puntos de una ronda ordenados por orden.
func (uc *UseCase) ListCheckpoints(ctx context.Context, roundID int64) ([]dto.CheckpointResponse, error) {
	if _, err := uc.getRound(ctx, roundID); err != nil {
		return nil, err
	}
	list, err := uc.points.ListByRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckpointResponse, 0, len(list))
	for _, cp := range list {
		out = append(out, *toCheckpointResponse(cp))
	}
	return out, nil
}

// AddCheckpoint agrega un punto a la ronda. El orden es único dentro de la ronda:
// si ya existe devuelve domain.ErrDuplicateOrder sin insertar.
func (uc *UseCase) AddCheckpoint(ctx context.Context, in dto.CreateCheckpointRequest) (*dto.CheckpointMutationResponse, error) {
	if _, err := uc.getRound(ctx, in.RoundID); err != nil {
		return nil, err
	}
	existing, err := uc.points.FindByOrder(ctx, in.RoundID, in.Order)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w (orden %d)", domain.ErrDuplicateOrder, in.Order)
	}
	out, err := uc.checkHistory(ctx, in.RoundID, "agregar punto")
	if err != nil {
		return nil, err
	}

	cp := &entity.RoundCheckpoint{
		RoundID:   in.RoundID,
		Order:     in.Order,
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		RadiusM:   in.RadiusM,
		QRCode:    in.QRCode,
		CreatedAt: uc.now(),
	}
	if err := uc.points.Create(ctx, cp); err != nil {
		return nil, err
	}
	out.Checkpoint = toCheckpointResponse(cp)
	return out, nil
}

// UpdateCheckpoint edita un punto. Cambiar el orden a uno ocupado devuelve domain.ErrDuplicateOrder.
func (uc *UseCase) UpdateCheckpoint(ctx context.Context, id int64, in dto.UpdateCheckpointRequest) (*dto.CheckpointMutationResponse, error) {
	cp, err := uc.getCheckpoint(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Order != nil && *in.Order != cp.Order {
		other, err := uc.points.FindByOrder(ctx, cp.RoundID, *in.Order)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != cp.ID {
			return nil, fmt.Errorf("%w (orden %d)", domain.ErrDuplicateOrder, *in.Order)
		}
		cp.Order = *in.Order
	}
	out, err := uc.checkHistory(ctx, cp.RoundID, "editar punto")
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		cp.Name = *in.Name
	}
	if in.Latitude != nil {
		cp.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		cp.Longitude = in.Longitude
	}
	if in.RadiusM != nil {
		cp.RadiusM = *in.RadiusM
	}
	if in.QRCode != nil {
		cp.QRCode = *in.QRCode
	}
	if err := uc.points.Update(ctx, cp); err != nil {
		return nil, err
	}
	out.Checkpoint = toCheckpointResponse(cp)
	return out, nil
}

// DeleteCheckpoint elimina un punto, con la misma verificación de historial.
func (uc *UseCase) DeleteCheckpoint(ctx context.Context, id int64) (*dto.CheckpointMutationResponse, error) {
	cp, err := uc.getCheckpoint(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.checkHistory(ctx, cp.RoundID, "eliminar punto")
	if err != nil {
		return nil, err
	}
	if err := uc.points.Delete(ctx, id); err != nil {
		return nil, err
	}
	return out, nil
}

// checkHistory cuenta ejecuciones de la ronda; advierte o bloquea según la política.
func (uc *UseCase) checkHistory(ctx context.Context, roundID int64, action string) (*dto.CheckpointMutationResponse, error) {
	n, err := uc.rounds.CountExecutions(ctx, roundID)
	if err != nil {
		return nil, err
	}
	out := &dto.CheckpointMutationResponse{ExecutionHistory: n}
	if n == 0 {
		return out, nil
	}
	if uc.policy.BlockWithHistory {
		return nil, fmt.Errorf("%w: la ronda %d tiene %d ejecuciones registradas", domain.ErrConflict, roundID, n)
	}
	uc.log.Warn().
		Int64("ronda_id", roundID).
		Int("ejecuciones", n).
		Str("accion", action).
		Msg("modificación de puntos en ronda con historial")
	out.Warning = historyWarning
	return out, nil
}

func (uc *UseCase) getRound(ctx context.Context, id int64) (*entity.RoundDefinition, error) {
	r, err := uc.rounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (uc *UseCase) getCheckpoint(ctx context.Context, id int64) (*entity.RoundCheckpoint, error) {
	cp, err := uc.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, domain.ErrNotFound
	}
	return cp, nil
}

func toRoundResponse(r *entity.RoundDefinition) *dto.RoundResponse {
	return &dto.RoundResponse{
		ID:          r.ID,
		Name:        r.Name,
		SubPostID:   r.SubPostID,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toCheckpointResponse(cp *entity.RoundCheckpoint) *dto.CheckpointResponse {
	return &dto.CheckpointResponse{
		ID:        cp.ID,
		RoundID:   cp.RoundID,
		Order:     cp.Order,
		Name:      cp.Name,
		Latitude:  cp.Latitude,
		Longitude: cp.Longitude,
		RadiusM:   cp.RadiusM,
		QRCode:    cp.QRCode,
		CreatedAt: cp.CreatedAt,
	}
}
