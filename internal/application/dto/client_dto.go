package dto

import "time"

// CreateClientRequest body para POST /api/clientes.
type CreateClientRequest struct {
	NIT          string `json:"nit"`
	BusinessName string `json:"razon_social"`
	Address      string `json:"direccion,omitempty"`
	Phone        string `json:"telefono,omitempty"`
	Email        string `json:"email,omitempty"`
}

// UpdateClientRequest body para PUT /api/clientes/:id.
type UpdateClientRequest struct {
	BusinessName *string `json:"razon_social,omitempty"`
	Address      *string `json:"direccion,omitempty"`
	Phone        *string `json:"telefono,omitempty"`
	Email        *string `json:"email,omitempty"`
	Active       *bool   `json:"activo,omitempty"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID           int64     `json:"id"`
	NIT          string    `json:"nit"`
	BusinessName string    `json:"razon_social"`
	Address      string    `json:"direccion"`
	Phone        string    `json:"telefono"`
	Email        string    `json:"email"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
