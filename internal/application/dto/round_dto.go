package dto

import "time"

// CreateRoundRequest body para POST /api/rondas-definicion.
type CreateRoundRequest struct {
	Name        string `json:"nombre"`
	SubPostID   *int64 `json:"subpuesto_id,omitempty"`
	Description string `json:"descripcion,omitempty"`
	Active      *bool  `json:"activa,omitempty"`
}

// UpdateRoundRequest body para PUT /api/rondas-definicion/:id (campos opcionales).
type UpdateRoundRequest struct {
	Name        *string `json:"nombre,omitempty"`
	SubPostID   *int64  `json:"subpuesto_id,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	Active      *bool   `json:"activa,omitempty"`
}

// RoundResponse salida de una ronda.
type RoundResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	SubPostID   *int64    `json:"subpuesto_id,omitempty"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCheckpointRequest body para POST /api/rondas-definicion/puntos.
type CreateCheckpointRequest struct {
	RoundID   int64    `json:"ronda_id"`
	Order     int      `json:"orden"`
	Name      string   `json:"nombre"`
	Latitude  *float64 `json:"latitud,omitempty"`
	Longitude *float64 `json:"longitud,omitempty"`
	RadiusM   int      `json:"radio_metros,omitempty"`
	QRCode    string   `json:"codigo_qr,omitempty"`
}

// UpdateCheckpointRequest body para PUT /api/rondas-definicion/puntos/:puntoID.
type UpdateCheckpointRequest struct {
	Order     *int     `json:"orden,omitempty"`
	Name      *string  `json:"nombre,omitempty"`
	Latitude  *float64 `json:"latitud,omitempty"`
	Longitude *float64 `json:"longitud,omitempty"`
	RadiusM   *int     `json:"radio_metros,omitempty"`
	QRCode    *string  `json:"codigo_qr,omitempty"`
}

// CheckpointResponse salida de un punto de ronda.
type CheckpointResponse struct {
	ID        int64     `json:"id"`
	RoundID   int64     `json:"ronda_id"`
	Order     int       `json:"orden"`
	Name      string    `json:"nombre"`
	Latitude  *float64  `json:"latitud,omitempty"`
	Longitude *float64  `json:"longitud,omitempty"`
	RadiusM   int       `json:"radio_metros"`
	QRCode    string    `json:"codigo_qr,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckpointMutationResponse resultado de crear/editar un punto, con la advertencia
// de historial cuando la ronda ya tiene ejecuciones registradas.
type CheckpointMutationResponse struct {
	Checkpoint       *CheckpointResponse `json:"punto,omitempty"`
	ExecutionHistory int                 `json:"historial_ejecuciones"`
	Warning          string              `json:"advertencia,omitempty"`
}
