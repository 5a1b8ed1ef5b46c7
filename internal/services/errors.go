package services

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrValidation is returned when input fails a domain validation rule.
var ErrValidation = errors.New("validation failed")
