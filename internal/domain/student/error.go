package student

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("student not found")
	ErrInvalidData = errors.New("invalid student data")
)
