package entity

import "time"

// RoundDefinition ronda de vigilancia con su secuencia ordenada de puntos.
type RoundDefinition struct {
	ID          int64
	Name        string
	SubPostID   *int64
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoundCheckpoint punto de control de una ronda. Order es único dentro de la ronda.
type RoundCheckpoint struct {
	ID        int64
	RoundID   int64
	Order     int
	Name      string
	Latitude  *float64
	Longitude *float64
	RadiusM   int
	QRCode    string
	CreatedAt time.Time
}
