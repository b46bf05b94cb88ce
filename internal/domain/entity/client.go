package entity

import "time"

// Client cliente que contrata el servicio de vigilancia.
type Client struct {
	ID           int64
	NIT          string
	BusinessName string
	Address      string
	Phone        string
	Email        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
