package dto

import "time"

// CreateNoveltyRequest body para POST /api/novedades.
type CreateNoveltyRequest struct {
	EmployeeID  int64      `json:"empleado_id"`
	Type        string     `json:"tipo"`
	Description string     `json:"descripcion,omitempty"`
	StartDate   time.Time  `json:"fecha_inicio"`
	EndDate     *time.Time `json:"fecha_fin,omitempty"`
}

// UpdateNoveltyRequest body para PUT /api/novedades/:id.
type UpdateNoveltyRequest struct {
	Type        *string    `json:"tipo,omitempty"`
	Description *string    `json:"descripcion,omitempty"`
	EndDate     *time.Time `json:"fecha_fin,omitempty"`
}

// NoveltyResponse salida de una novedad.
type NoveltyResponse struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"empleado_id"`
	Type        string     `json:"tipo"`
	Description string     `json:"descripcion"`
	StartDate   time.Time  `json:"fecha_inicio"`
	EndDate     *time.Time `json:"fecha_fin,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
