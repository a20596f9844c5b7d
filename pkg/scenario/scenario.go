package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// OpKind names a cache operation.
type OpKind string

const (
	OpGet    OpKind = "get"
	OpSet    OpKind = "set"
	OpRemove OpKind = "remove"
)

// Op is a single cache operation. Value is only used by set.
type Op struct {
	Kind  OpKind `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
}

// Cache describes an LRU replay. A zero Capacity takes the runner default.
type Cache struct {
	Capacity int  `yaml:"capacity,omitempty"`
	Ops      []Op `yaml:"ops"`
}

// TopK describes a bounded selection of the largest values.
// A zero K takes the runner default.
type TopK struct {
	K      int   `yaml:"k,omitempty"`
	Values []int `yaml:"values"`
}

// Scenario is one YAML document. Every section is optional but at least one
// must be present.
//
//	name: checkout
//	merge:
//	  - [1, 4, 9]
//	  - [2, 3]
//	median: [5, 15, 1, 3]
//	sort: [9, 2, 7]
//	topk:
//	  k: 2
//	  values: [4, 8, 1, 9]
//	cache:
//	  capacity: 2
//	  ops:
//	    - {op: set, key: a, value: "1"}
//	    - {op: get, key: a}
type Scenario struct {
	Name   string    `yaml:"name"`
	Merge  [][]int   `yaml:"merge,omitempty"`
	Median []float64 `yaml:"median,omitempty"`
	Sort   []int     `yaml:"sort,omitempty"`
	TopK   *TopK     `yaml:"topk,omitempty"`
	Cache  *Cache    `yaml:"cache,omitempty"`
}

// Load decodes and validates a single scenario document.
// Unknown fields are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidScenario)
		}
		return nil, errors.Join(ErrDecodeScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the scenario can be run. All problems are reported
// together and each wraps ErrInvalidScenario.
func (s *Scenario) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrInvalidScenario)...))
	}

	if s.Merge == nil && s.Median == nil && s.Sort == nil && s.TopK == nil && s.Cache == nil {
		invalid("scenario %q has no sections", s.Name)
	}
	for i, in := range s.Merge {
		if !slices.IsSorted(in) {
			invalid("merge input %d is not sorted", i)
		}
	}
	for i, v := range s.Median {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			invalid("median value %d is not a finite number", i)
		}
	}
	if s.TopK != nil && s.TopK.K < 0 {
		invalid("topk size %d", s.TopK.K)
	}
	if s.Cache != nil {
		if s.Cache.Capacity < 0 {
			invalid("cache capacity %d", s.Cache.Capacity)
		}
		for i, op := range s.Cache.Ops {
			switch op.Kind {
			case OpGet, OpSet, OpRemove:
			default:
				invalid("cache op %d: unknown kind %q", i, op.Kind)
			}
			if op.Key == "" {
				invalid("cache op %d: empty key", i)
			}
		}
	}
	return errors.Join(errs...)
}
