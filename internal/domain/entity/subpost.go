package entity

import "time"

// SubPost subpuesto de trabajo dentro de un puesto, con un número de guardas requerido.
type SubPost struct {
	ID             int64
	PostID         int64
	Name           string
	RequiredGuards int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GuardAssignment asignación de un guarda a un subpuesto (asignacion_guardas_puesto).
type GuardAssignment struct {
	ID         int64
	SubPostID  int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    *time.Time
	Active     bool
	CreatedAt  time.Time
}
