package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("employee name already exists")
)
