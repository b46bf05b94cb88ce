package repository

import (
	"context"

	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	GetByID(ctx context.Context, id int64) (*entity.Contract, error)
	Update(ctx context.Context, c *entity.Contract) error
	// List filtra por cliente si clientID no es nil.
	List(ctx context.Context, clientID *int64, limit, offset int) ([]*entity.Contract, error)
	Delete(ctx context.Context, id int64) error
}

// EPSRepository puerto de persistencia para eps.
type EPSRepository interface {
	Create(ctx context.Context, e *entity.EPS) error
	GetByID(ctx context.Context, id int64) (*entity.EPS, error)
	Update(ctx context.Context, e *entity.EPS) error
	List(ctx context.Context, limit, offset int) ([]*entity.EPS, error)
	Delete(ctx context.Context, id int64) error
}

// SalaryRepository puerto de persistencia para salarios.
type SalaryRepository interface {
	Create(ctx context.Context, s *entity.Salary) error
	GetByID(ctx context.Context, id int64) (*entity.Salary, error)
	Update(ctx context.Context, s *entity.Salary) error
	List(ctx context.Context, limit, offset int) ([]*entity.Salary, error)
	Delete(ctx context.Context, id int64) error
}

// ShiftRepository puerto de persistencia para turnos.
type ShiftRepository interface {
	Create(ctx context.Context, s *entity.Shift) error
	GetByID(ctx context.Context, id int64) (*entity.Shift, error)
	Update(ctx context.Context, s *entity.Shift) error
	// List filtra por subpuesto si subPostID no es nil.
	List(ctx context.Context, subPostID *int64, limit, offset int) ([]*entity.Shift, error)
	Delete(ctx context.Context, id int64) error
}

// SubPostRepository puerto de persistencia para subpuestos_trabajo y asignacion_guardas_puesto.
type SubPostRepository interface {
	Create(ctx context.Context, s *entity.SubPost) error
	GetByID(ctx context.Context, id int64) (*entity.SubPost, error)
	Update(ctx context.Context, s *entity.SubPost) error
	List(ctx context.Context, limit, offset int) ([]*entity.SubPost, error)
	Delete(ctx context.Context, id int64) error

	CreateAssignment(ctx context.Context, a *entity.GuardAssignment) error
	ListAssignments(ctx context.Context, subPostID int64, activeOnly bool) ([]*entity.GuardAssignment, error)
	EndAssignment(ctx context.Context, assignmentID int64) error
}

// IncidentRepository puerto de persistencia para incidentes.
type IncidentRepository interface {
	Create(ctx context.Context, i *entity.Incident) error
	GetByID(ctx context.Context, id int64) (*entity.Incident, error)
	Update(ctx context.Context, i *entity.Incident) error
	List(ctx context.Context, limit, offset int) ([]*entity.Incident, error)
	Delete(ctx context.Context, id int64) error
}

// NoveltyRepository puerto de persistencia para novedades.
type NoveltyRepository interface {
	Create(ctx context.Context, n *entity.Novelty) error
	GetByID(ctx context.Context, id int64) (*entity.Novelty, error)
	Update(ctx context.Context, n *entity.Novelty) error
	List(ctx context.Context, limit, offset int) ([]*entity.Novelty, error)
	Delete(ctx context.Context, id int64) error
}
