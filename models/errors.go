package models

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrStateConflict     = errors.New("operation not allowed in current status")
	ErrInsufficientStock = errors.New("not enough stock")
)
