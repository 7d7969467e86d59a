package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectKeyExists    = errors.New("project with this key already exists")
	ErrProjectInUse        = errors.New("project still has employees or records")
	ErrProjectAccessDenied = errors.New("project is outside of your scope")
)
