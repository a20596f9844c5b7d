package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/collections/pkg/cache"
	"github.com/dmitrymomot/collections/pkg/heap"
	"github.com/dmitrymomot/collections/pkg/kway"
	"github.com/dmitrymomot/collections/pkg/logger"
	"github.com/dmitrymomot/collections/pkg/median"
	"github.com/dmitrymomot/collections/pkg/order"
)

// MedianStep is the running median after one insertion.
type MedianStep struct {
	Value float64 `yaml:"value"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
	Mean  float64 `yaml:"mean"`
}

// OpResult is the outcome of one cache operation. For get and remove Value
// is the value found; for set it is the value that was replaced.
type OpResult struct {
	Op    Op     `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Found bool   `yaml:"found"`
}

// CacheReport summarises an LRU replay. Keys are listed most recently used
// first.
type CacheReport struct {
	Results []OpResult  `yaml:"results,omitempty"`
	Keys    []string    `yaml:"keys"`
	Stats   cache.Stats `yaml:"stats"`
}

// Report collects the output of every section that ran.
type Report struct {
	RunID    string        `yaml:"run_id"`
	Name     string        `yaml:"name,omitempty"`
	Merged   []int         `yaml:"merged,omitempty,flow"`
	Medians  []MedianStep  `yaml:"medians,omitempty"`
	Sorted   []int         `yaml:"sorted,omitempty,flow"`
	TopK     []int         `yaml:"topk,omitempty,flow"`
	Cache    *CacheReport  `yaml:"cache,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDefaultCapacity sets the cache capacity used when a scenario leaves it zero.
func WithDefaultCapacity(n int) Option {
	return func(r *runner) { r.capacity = n }
}

// WithDefaultTopK sets the top-k size used when a scenario leaves it zero.
func WithDefaultTopK(k int) Option {
	return func(r *runner) { r.topK = k }
}

// WithCacheHook registers a function called with the cache before any op is
// replayed, for example to attach a metrics collector.
func WithCacheHook(fn func(*cache.LRUCache[string, string])) Option {
	return func(r *runner) { r.cacheHook = fn }
}

type runner struct {
	log       *slog.Logger
	capacity  int
	topK      int
	cacheHook func(*cache.LRUCache[string, string])
}

// checkEvery is how many cache ops run between context checks.
const checkEvery = 256

// Run executes every section of s in a fixed order: merge, median, sort,
// topk, cache. It stops at the first cancelled context check and returns the
// context error.
func Run(ctx context.Context, s *Scenario, opts ...Option) (*Report, error) {
	r := &runner{
		log:      logger.Discard(),
		capacity: 128,
		topK:     10,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Name: s.Name}
	log := r.log.With(logger.RunID(rep.RunID))
	log.InfoContext(ctx, "scenario started", slog.String("scenario", s.Name))

	steps := []struct {
		name string
		on   bool
		fn   func(context.Context, *slog.Logger, *Scenario, *Report) error
	}{
		{"merge", s.Merge != nil, r.runMerge},
		{"median", s.Median != nil, r.runMedian},
		{"sort", s.Sort != nil, r.runSort},
		{"topk", s.TopK != nil, r.runTopK},
		{"lru", s.Cache != nil, r.runCache},
	}
	for _, st := range steps {
		if !st.on {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if err := st.fn(ctx, log.With(logger.Container(st.name)), s, rep); err != nil {
			return nil, fmt.Errorf("scenario %q: %s: %w", s.Name, st.name, err)
		}
	}

	rep.Duration = time.Since(start)
	log.InfoContext(ctx, "scenario finished", logger.Duration(rep.Duration))
	return rep, nil
}

func (r *runner) runMerge(ctx context.Context, log *slog.Logger, s *Scenario, rep *Report) error {
	rep.Merged = kway.MergeSorted(s.Merge, order.Less[int])
	log.DebugContext(ctx, "inputs merged", slog.Int("inputs", len(s.Merge)), logger.Size(len(rep.Merged)))
	return nil
}

func (r *runner) runMedian(ctx context.Context, log *slog.Logger, s *Scenario, rep *Report) error {
	t := median.NewOrdered[float64]()
	rep.Medians = make([]MedianStep, 0, len(s.Median))
	for _, v := range s.Median {
		t.Insert(v)
		lo, hi, _ := t.Median()
		mean, _ := median.Mean(t)
		rep.Medians = append(rep.Medians, MedianStep{Value: v, Lower: lo, Upper: hi, Mean: mean})
	}
	log.DebugContext(ctx, "median stream consumed", logger.Size(t.Len()))
	return nil
}

func (r *runner) runSort(ctx context.Context, log *slog.Logger, s *Scenario, rep *Report) error {
	rep.Sorted = heap.Sort(s.Sort, order.Less[int])
	log.DebugContext(ctx, "values sorted", logger.Size(len(rep.Sorted)))
	return nil
}

func (r *runner) runTopK(ctx context.Context, log *slog.Logger, s *Scenario, rep *Report) error {
	k := s.TopK.K
	if k == 0 {
		k = r.topK
	}
	if k <= 0 {
		return fmt.Errorf("topk size %d: %w", k, ErrInvalidScenario)
	}
	tk := heap.NewTopK(k, order.Greater[int])
	for _, v := range s.TopK.Values {
		tk.Push(v)
	}
	rep.TopK = tk.Values()
	log.DebugContext(ctx, "top values selected", slog.Int("k", k), logger.Size(len(rep.TopK)))
	return nil
}

func (r *runner) runCache(ctx context.Context, log *slog.Logger, s *Scenario, rep *Report) error {
	capacity := s.Cache.Capacity
	if capacity == 0 {
		capacity = r.capacity
	}
	if capacity <= 0 {
		return fmt.Errorf("cache capacity %d: %w", capacity, ErrInvalidScenario)
	}

	c := cache.NewLRUCache[string, string](capacity)
	c.SetEvictCallback(func(key, _ string) {
		log.DebugContext(ctx, "entry dropped", slog.String("key", key))
	})
	if r.cacheHook != nil {
		r.cacheHook(c)
	}

	cr := &CacheReport{Results: make([]OpResult, 0, len(s.Cache.Ops))}
	for i, op := range s.Cache.Ops {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		res := OpResult{Op: op}
		switch op.Kind {
		case OpGet:
			res.Value, res.Found = c.Get(op.Key)
		case OpSet:
			res.Value, res.Found = c.Set(op.Key, op.Value)
		case OpRemove:
			res.Value, res.Found = c.Remove(op.Key)
		}
		cr.Results = append(cr.Results, res)
	}
	cr.Keys = c.Keys()
	cr.Stats = c.Stats()
	rep.Cache = cr

	log.InfoContext(ctx, "cache replayed",
		logger.Capacity(capacity),
		logger.Size(cr.Stats.Len),
		slog.Int("ops", len(s.Cache.Ops)),
		slog.Uint64("hits", cr.Stats.Hits),
		slog.Uint64("misses", cr.Stats.Misses),
		slog.Uint64("evictions", cr.Stats.Evictions),
	)
	return nil
}
