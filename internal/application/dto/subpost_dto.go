package dto

import "time"

// CreateSubPostRequest body para POST /api/subpuestos.
type CreateSubPostRequest struct {
	PostID         int64  `json:"puesto_id"`
	Name           string `json:"nombre"`
	RequiredGuards int    `json:"guardas_requeridos"`
}

// UpdateSubPostRequest body para PUT /api/subpuestos/:id.
type UpdateSubPostRequest struct {
	Name           *string `json:"nombre,omitempty"`
	RequiredGuards *int    `json:"guardas_requeridos,omitempty"`
	Active         *bool   `json:"activo,omitempty"`
}

// SubPostResponse salida de un subpuesto.
type SubPostResponse struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"puesto_id"`
	Name           string    `json:"nombre"`
	RequiredGuards int       `json:"guardas_requeridos"`
	Active         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AssignGuardRequest body para POST /api/subpuestos/:id/asignaciones.
type AssignGuardRequest struct {
	EmployeeID int64     `json:"empleado_id"`
	StartDate  time.Time `json:"fecha_inicio"`
}

// GuardAssignmentResponse salida de una asignación.
type GuardAssignmentResponse struct {
	ID         int64      `json:"id"`
	SubPostID  int64      `json:"subpuesto_id"`
	EmployeeID int64      `json:"empleado_id"`
	StartDate  time.Time  `json:"fecha_inicio"`
	EndDate    *time.Time `json:"fecha_fin,omitempty"`
	Active     bool       `json:"activo"`
}
