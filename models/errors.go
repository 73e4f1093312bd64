package models

import "errors"

// Error taxonomy shared by repositories, services and controllers.
// Callers branch with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("already exists")
	ErrPoolExhausted = errors.New("connection pool exhausted")
)
