package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Service records the service name under the key "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// RunID records a scenario run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Container records the container kind (heap, lru, median...) under the key "container".
func Container(name string) slog.Attr {
	return slog.String("container", name)
}

// Op records a container operation name under the key "op".
func Op(name string) slog.Attr {
	return slog.String("op", name)
}

// Size records an element count under the key "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Capacity records a fixed capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
