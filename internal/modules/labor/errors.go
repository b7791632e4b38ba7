package labor

import (
	"errors"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrProfileNotFound = errors.New("labor profile not found")
	ErrSkillExists     = errors.New("skill already listed")
	ErrSkillNotFound   = errors.New("skill not listed")
)
