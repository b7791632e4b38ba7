package market

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("not enough stock")
)
