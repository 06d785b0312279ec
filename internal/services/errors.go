package services

import (
	"errors"
	"fmt"
)

// Shared failure modes. Handlers map these onto HTTP statuses; anything
// else propagating out of a service is treated as an internal error.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("operation not permitted")
	ErrValidation = errors.New("validation failed")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
