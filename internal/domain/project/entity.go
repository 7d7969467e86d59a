package project

import "time"

type Project struct {
	ID          string
	Key         string // short unique code users are scoped by, e.g. "CORE"
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
