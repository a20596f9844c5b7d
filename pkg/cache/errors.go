package cache

import "errors"

// ErrInvalidCapacity is the panic value of NewLRUCache for a non-positive capacity.
var ErrInvalidCapacity = errors.New("cache: LRU cache capacity must be positive")
