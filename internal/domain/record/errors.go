package record

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrInvalidHours     = errors.New("hours must be greater than 0 and at most 24")
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
