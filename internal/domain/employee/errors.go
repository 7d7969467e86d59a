package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrProjectNotFound    = errors.New("assigned project does not exist")
	ErrEmployeeHasRecords = errors.New("employee still has time records")
)
