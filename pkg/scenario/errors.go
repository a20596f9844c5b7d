package scenario

import "errors"

var (
	// ErrInvalidScenario is wrapped by every validation failure.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrDecodeScenario is returned when the YAML document cannot be decoded.
	ErrDecodeScenario = errors.New("failed to decode scenario")

	// ErrInvalidSynthetic is returned by Synthetic for a non-positive key count.
	ErrInvalidSynthetic = errors.New("invalid synthetic workload parameters")
)
