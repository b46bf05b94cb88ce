package entity

import "time"

// Estados de incidente.
const (
	IncidentOpen   = "abierto"
	IncidentClosed = "cerrado"
)

// Incident incidente reportado en un puesto.
type Incident struct {
	ID          int64
	PostID      int64
	ReportedBy  string
	Type        string
	Description string
	Severity    string // baja, media, alta
	OccurredAt  time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
