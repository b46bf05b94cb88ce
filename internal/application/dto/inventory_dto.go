package dto

import "time"

// RecordMovementRequest body para POST /api/inventario-puesto/movimiento.
type RecordMovementRequest struct {
	LocationID    int64  `json:"puesto_id"`
	ItemVariantID int64  `json:"item_variante_id"`
	Type          string `json:"tipo_movimiento"`
	Quantity      int    `json:"cantidad"`
	Condition     string `json:"condicion,omitempty"`
	Notes         string `json:"observaciones,omitempty"`
}

// RecordMovementResponse respuesta del registro de movimiento.
type RecordMovementResponse struct {
	NewQuantity int              `json:"nueva_cantidad"`
	Movement    MovementResponse `json:"movimiento"`
}

// MovementResponse registro del libro de movimientos.
type MovementResponse struct {
	ID                 int64     `json:"id"`
	LocationID         int64     `json:"puesto_id"`
	ItemVariantID      int64     `json:"item_variante_id"`
	Type               string    `json:"tipo_movimiento"`
	Quantity           int       `json:"cantidad"`
	Condition          string    `json:"condicion"`
	ResponsiblePartyID string    `json:"responsable_id"`
	Notes              string    `json:"observaciones,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// StockResponse existencia actual de una clave (puesto, variante, condición).
type StockResponse struct {
	LocationID      int64     `json:"puesto_id"`
	ItemVariantID   int64     `json:"item_variante_id"`
	Condition       string    `json:"condicion"`
	CurrentQuantity int       `json:"cantidad_actual"`
	MinimumQuantity int       `json:"cantidad_minima"`
	LastUpdated     time.Time `json:"ultima_actualizacion"`
	BelowMinimum    bool      `json:"bajo_minimo"`
}

// SetMinimumRequest body para PUT /api/inventario-puesto/minimo.
type SetMinimumRequest struct {
	LocationID      int64  `json:"puesto_id"`
	ItemVariantID   int64  `json:"item_variante_id"`
	Condition       string `json:"condicion,omitempty"`
	MinimumQuantity int    `json:"cantidad_minima"`
}
