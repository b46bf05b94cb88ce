package entity

import "time"

// Novelty novedad de personal (incapacidad, permiso, vacaciones...).
type Novelty struct {
	ID          int64
	EmployeeID  int64
	Type        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}
