package applications

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already applied")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoProfile    = errors.New("no profile")
)
