package dto

import "time"

// CreateIncidentRequest body para POST /api/incidentes.
type CreateIncidentRequest struct {
	PostID      int64     `json:"puesto_id"`
	Type        string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Severity    string    `json:"gravedad"`
	OccurredAt  time.Time `json:"fecha"`
}

// UpdateIncidentRequest body para PUT /api/incidentes/:id.
type UpdateIncidentRequest struct {
	Type        *string `json:"tipo,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	Severity    *string `json:"gravedad,omitempty"`
	Status      *string `json:"estado,omitempty"`
}

// IncidentResponse salida de un incidente.
type IncidentResponse struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"puesto_id"`
	ReportedBy  string    `json:"reportado_por"`
	Type        string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Severity    string    `json:"gravedad"`
	OccurredAt  time.Time `json:"fecha"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
