package brcode

import "errors"

var (
	ErrEmptyKey      = errors.New("pix key is empty")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrFieldTooLong  = errors.New("field value exceeds 99 characters")
)
