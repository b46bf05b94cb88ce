package entity

import "time"

// EPS entidad promotora de salud a la que se afilian los empleados.
type EPS struct {
	ID        int64
	Name      string
	Code      string
	Active    bool
	CreatedAt time.Time
}
