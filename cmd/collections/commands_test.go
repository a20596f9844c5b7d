package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/collections/pkg/config"
	"github.com/dmitrymomot/collections/pkg/logger"
	"github.com/dmitrymomot/collections/pkg/scenario"
)

func TestRunWritesReportWithMetrics(t *testing.T) {
	e := &env{
		ctx: context.Background(),
		cfg: config.App{CacheCapacity: 2, TopK: 3},
		log: logger.Discard(),
	}
	s := &scenario.Scenario{
		Name: "cli",
		Cache: &scenario.Cache{Ops: []scenario.Op{
			{Kind: scenario.OpSet, Key: "a", Value: "1"},
			{Kind: scenario.OpGet, Key: "a"},
			{Kind: scenario.OpGet, Key: "b"},
		}},
	}

	rep, reg, err := e.run(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, rep, reg))

	var doc struct {
		Report struct {
			Name  string `yaml:"name"`
			Cache struct {
				Keys []string `yaml:"keys"`
			} `yaml:"cache"`
		} `yaml:"report"`
		Metrics []metric `yaml:"metrics"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "cli", doc.Report.Name)
	assert.Equal(t, []string{"a"}, doc.Report.Cache.Keys)

	values := make(map[string]float64)
	for _, m := range doc.Metrics {
		assert.Equal(t, "cli", m.Labels["cache"])
		values[m.Name] = m.Value
	}
	assert.Equal(t, map[string]float64{
		"collections_cache_hits_total":      1,
		"collections_cache_misses_total":    1,
		"collections_cache_evictions_total": 0,
		"collections_cache_entries":         1,
		"collections_cache_capacity":        2,
	}, values)
}

func TestNewLogger(t *testing.T) {
	t.Run("development profile logs debug", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(config.App{Env: "development", ServiceName: "svc"}, &buf)
		require.NoError(t, err)

		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("explicit level overrides profile", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(config.App{Env: "development", LogLevel: "info"}, &buf)
		require.NoError(t, err)

		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("shown")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := newLogger(config.App{LogLevel: "loud"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})
}
