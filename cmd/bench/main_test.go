package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metricValue sums every series of the named counter or gauge.
func metricValue(t *testing.T, g prometheus.Gatherer, name string) float64 {
	t.Helper()
	mfs, err := g.Gather()
	require.NoError(t, err)
	var v float64
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			v += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return v
}

func TestRouter_MetricsAndPprof(t *testing.T) {
	for _, tc := range []struct {
		name     string
		pprof    bool
		path     string
		wantCode int
	}{
		{"metrics", false, "/metrics", http.StatusOK},
		{"pprof disabled", false, "/debug/pprof/", http.StatusNotFound},
		{"pprof enabled", true, "/debug/pprof/", http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(prometheus.NewRegistry(), tc.pprof).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRun_ZipfWorkload(t *testing.T) {
	cfg := config{
		Capacity: 64,
		Shards:   4,
		Workers:  2,
		Duration: 50 * time.Millisecond,
		Reads:    80,
		Keys:     1000,
		ZipfS:    1.1,
		ZipfV:    1,
		Seed:     1,
	}

	// Each run gets its own registry, so running twice must not collide.
	for i := 0; i < 2; i++ {
		reg := prometheus.NewRegistry()
		res, err := run(context.Background(), cfg, reg, reg, zerolog.Nop())
		require.NoError(t, err)

		assert.Equal(t, 4, res.Shards)
		assert.Positive(t, res.Ops)
		assert.Equal(t, res.Ops, res.Reads+res.Writes)
		assert.LessOrEqual(t, res.Size, res.Capacity)

		hits := metricValue(t, reg, "lru_bench_hits_total")
		misses := metricValue(t, reg, "lru_bench_misses_total")
		assert.Positive(t, hits+misses)
		assert.Equal(t, float64(res.Hits), hits)
		assert.Equal(t, float64(res.Misses), misses)
		assert.Equal(t, float64(res.Size), metricValue(t, reg, "lru_bench_size_entries"))
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := run(context.Background(), config{Capacity: 8, Keys: 0}, reg, reg, zerolog.Nop())
	assert.ErrorContains(t, err, "keys must be >= 1")

	_, err = run(context.Background(), config{Capacity: 8, Keys: 10, ZipfS: 0.5, ZipfV: 1, Duration: time.Millisecond}, reg, reg, zerolog.Nop())
	assert.ErrorContains(t, err, "invalid zipf parameters")
}

func TestRootCmd_FlagsAndEnv(t *testing.T) {
	t.Setenv("LRU_BENCH_WORKERS", "3")

	var errOut bytes.Buffer
	reg := prometheus.NewRegistry()
	cmd := newRootCmd(reg, reg)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{
		"--cap", "32",
		"--shards", "2",
		"--keys", "100",
		"--duration", "20ms",
		"--seed", "7",
		"--http=",
		"--log-format", "json",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), `"cap":32`)
	assert.Contains(t, errOut.String(), `"workers":3`)
	assert.Contains(t, errOut.String(), `"shards":2`)
	assert.Contains(t, errOut.String(), "workload finished")
	assert.LessOrEqual(t, metricValue(t, reg, "lru_bench_size_entries"), 32.0)
}
