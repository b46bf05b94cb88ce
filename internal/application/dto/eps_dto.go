package dto

import "time"

// CreateEPSRequest body para POST /api/eps.
type CreateEPSRequest struct {
	Name string `json:"nombre"`
	Code string `json:"codigo"`
}

// UpdateEPSRequest body para PUT /api/eps/:id.
type UpdateEPSRequest struct {
	Name   *string `json:"nombre,omitempty"`
	Code   *string `json:"codigo,omitempty"`
	Active *bool   `json:"activo,omitempty"`
}

// EPSResponse salida de una EPS.
type EPSResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Code      string    `json:"codigo"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
