package heap

import "errors"

var (
	ErrNilOrder    = errors.New("heap: order function cannot be nil")
	ErrInvalidTopK = errors.New("heap: top-k size must be positive")
)
