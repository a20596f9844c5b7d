package cachemetrics

import "errors"

var ErrNilSource = errors.New("cachemetrics: stats source cannot be nil")
