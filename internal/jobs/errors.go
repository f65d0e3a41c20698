package jobs

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate job")
	ErrInvalidInput = errors.New("invalid input")
)
