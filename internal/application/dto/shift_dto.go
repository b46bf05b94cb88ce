package dto

import "time"

// CreateShiftRequest body para POST /api/turnos.
type CreateShiftRequest struct {
	EmployeeID int64     `json:"empleado_id"`
	SubPostID  int64     `json:"subpuesto_id"`
	Date       time.Time `json:"fecha"`
	StartTime  string    `json:"hora_inicio"`
	EndTime    string    `json:"hora_fin"`
	Type       string    `json:"tipo"`
}

// UpdateShiftRequest body para PUT /api/turnos/:id.
type UpdateShiftRequest struct {
	EmployeeID *int64     `json:"empleado_id,omitempty"`
	Date       *time.Time `json:"fecha,omitempty"`
	StartTime  *string    `json:"hora_inicio,omitempty"`
	EndTime    *string    `json:"hora_fin,omitempty"`
	Type       *string    `json:"tipo,omitempty"`
}

// ShiftResponse salida de un turno.
type ShiftResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"empleado_id"`
	SubPostID  int64     `json:"subpuesto_id"`
	Date       time.Time `json:"fecha"`
	StartTime  string    `json:"hora_inicio"`
	EndTime    string    `json:"hora_fin"`
	Type       string    `json:"tipo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
