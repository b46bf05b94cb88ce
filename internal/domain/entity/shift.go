package entity

import "time"

// Tipos de turno.
const (
	ShiftDay   = "diurno"
	ShiftNight = "nocturno"
	ShiftRest  = "descanso"
)

// Shift turno programado de un empleado en un subpuesto.
type Shift struct {
	ID         int64
	EmployeeID int64
	SubPostID  int64
	Date       time.Time
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Type       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
