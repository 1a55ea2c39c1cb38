package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatriculeExists  = errors.New("matricule already exists")
	ErrCINExists        = errors.New("CIN already registered")
	ErrNoBaseSalary     = errors.New("employee has no base salary configured")
)
