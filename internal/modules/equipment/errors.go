package equipment

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("equipment not found")
	ErrForbidden  = errors.New("operation not allowed")
)
