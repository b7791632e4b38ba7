package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("operation not allowed")
	ErrEquipmentUnavailable    = errors.New("equipment not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
