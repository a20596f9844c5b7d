package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/collections/pkg/cache"
	"github.com/dmitrymomot/collections/pkg/cachemetrics"
	"github.com/dmitrymomot/collections/pkg/logger"
	"github.com/dmitrymomot/collections/pkg/scenario"
)

var (
	fileFlag = cli.StringFlag{
		Name:  "file, f",
		Usage: "scenario `FILE` in YAML",
	}
	opsFlag = cli.IntFlag{
		Name:  "ops",
		Usage: "number of operations (default COLLECTIONS_SYNTHETIC_OPS)",
	}
	keysFlag = cli.IntFlag{
		Name:  "keys",
		Usage: "number of distinct keys (default COLLECTIONS_SYNTHETIC_KEYS)",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "generator seed (default COLLECTIONS_SEED)",
	}
	capacityFlag = cli.IntFlag{
		Name:  "capacity",
		Usage: "cache capacity (default COLLECTIONS_CACHE_CAPACITY)",
	}
)

func runCommand(e *env) cli.Command {
	return cli.Command{
		Name:      "run",
		Usage:     "Replay a scenario file and print the report",
		ArgsUsage: " ",
		Flags:     []cli.Flag{fileFlag},
		Action: func(c *cli.Context) error {
			path := c.String("file")
			if path == "" {
				return cli.NewExitError("--file is required", 2)
			}
			s, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}
			rep, reg, err := e.run(s)
			if err != nil {
				return err
			}
			return writeReport(os.Stdout, rep, reg)
		},
	}
}

func synthCommand(e *env) cli.Command {
	return cli.Command{
		Name:      "synth",
		Usage:     "Replay a random LRU workload and print its statistics",
		ArgsUsage: " ",
		Flags:     []cli.Flag{opsFlag, keysFlag, seedFlag, capacityFlag},
		Action: func(c *cli.Context) error {
			n := e.cfg.SyntheticOps
			if c.IsSet(opsFlag.Name) {
				n = c.Int(opsFlag.Name)
			}
			keys := e.cfg.SyntheticKeys
			if c.IsSet(keysFlag.Name) {
				keys = c.Int(keysFlag.Name)
			}
			seed := e.cfg.Seed
			if c.IsSet(seedFlag.Name) {
				seed = c.Int64(seedFlag.Name)
			}

			ops, err := scenario.Synthetic(n, keys, seed)
			if err != nil {
				return err
			}
			s := &scenario.Scenario{
				Name:  "synthetic",
				Cache: &scenario.Cache{Capacity: c.Int(capacityFlag.Name), Ops: ops},
			}
			rep, reg, err := e.run(s)
			if err != nil {
				return err
			}
			// Per-op results are noise at this scale.
			rep.Cache.Results = nil
			rep.Cache.Keys = nil
			return writeReport(os.Stdout, rep, reg)
		},
	}
}

// run executes s with a metrics collector attached to its cache.
func (e *env) run(s *scenario.Scenario) (*scenario.Report, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	var regErr error

	name := s.Name
	if name == "" {
		name = "default"
	}
	rep, err := scenario.Run(e.ctx, s,
		scenario.WithLogger(e.log),
		scenario.WithDefaultCapacity(e.cfg.CacheCapacity),
		scenario.WithDefaultTopK(e.cfg.TopK),
		scenario.WithCacheHook(func(c *cache.LRUCache[string, string]) {
			regErr = reg.Register(cachemetrics.NewCollector(name, c))
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	if regErr != nil {
		e.log.WarnContext(e.ctx, "cache metrics unavailable", logger.Error(regErr))
	}
	return rep, reg, nil
}

// metric is one gathered sample, flattened for printing.
type metric struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty,flow"`
	Value  float64           `yaml:"value"`
}

func gather(reg *prometheus.Registry) ([]metric, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	var out []metric
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			mt := metric{Name: mf.GetName(), Labels: make(map[string]string)}
			for _, lp := range m.GetLabel() {
				mt.Labels[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				mt.Value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				mt.Value = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, mt)
		}
	}
	return out, nil
}

func writeReport(w io.Writer, rep *scenario.Report, reg *prometheus.Registry) error {
	metrics, err := gather(reg)
	if err != nil {
		slog.Warn("metrics skipped", logger.Error(err))
	}
	doc := struct {
		Report  *scenario.Report `yaml:"report"`
		Metrics []metric         `yaml:"metrics,omitempty"`
	}{rep, metrics}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
