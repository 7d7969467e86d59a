package employee

import "time"

type Employee struct {
	ID        string
	FullName  string
	Title     string
	ProjectID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
