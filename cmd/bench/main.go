// Command bench runs a synthetic workload against a sharded LRU and exposes Prometheus and pprof endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/lru/cache"
	"github.com/IvanBrykalov/lru/internal/logging"
	pmet "github.com/IvanBrykalov/lru/metrics/prom"
	"github.com/IvanBrykalov/lru/syncache"
)

type config struct {
	Capacity int
	Shards   int
	Workers  int
	Duration time.Duration
	Reads    int
	Keys     int
	ZipfS    float64
	ZipfV    float64
	Seed     int64
	Preload  int
	HTTP     string
	Pprof    bool
	LogLevel string
	LogFmt   string
}

// result summarizes one workload run.
type result struct {
	Ops, Reads, Writes, Hits, Misses uint64
	Size, Capacity, Shards           int
}

func main() {
	if err := newRootCmd(prometheus.DefaultRegisterer, prometheus.DefaultGatherer).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(reg prometheus.Registerer, gatherer prometheus.Gatherer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LRU_BENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "bench",
		Short:         "Drive a sharded LRU with a Zipf workload",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(v)
			log, err := logging.New(logging.Config{
				Level:  cfg.LogLevel,
				Format: logging.Format(cfg.LogFmt),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if _, err := run(ctx, cfg, reg, gatherer, log); err != nil {
				log.Error().Err(err).Msg("bench failed")
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("cap", 100_000, "cache capacity (entries)")
	f.Int("shards", 0, "number of shards (0=auto)")
	f.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
	f.Duration("duration", 10*time.Second, "benchmark duration")
	f.Int("reads", 80, "read percentage [0..100]")
	f.Int("keys", 1_000_000, "keyspace size")
	f.Float64("zipf-s", 1.1, "Zipf s > 1 (skew)")
	f.Float64("zipf-v", 1.0, "Zipf v >= 1")
	f.Int64("seed", time.Now().UnixNano(), "random seed")
	f.Int("preload", 0, "preload entries (0 = cap/2)")
	f.String("http", ":8080", "serve /metrics (and /debug with --pprof) at addr; empty = disabled")
	f.Bool("pprof", false, "mount pprof handlers under /debug")
	f.String("log-level", "info", "log level")
	f.String("log-format", string(logging.FormatConsole), "log format: json | console")
	_ = v.BindPFlags(f)

	return cmd
}

// loadConfig reads the bound flags, overridden by LRU_BENCH_* variables.
func loadConfig(v *viper.Viper) config {
	return config{
		Capacity: v.GetInt("cap"),
		Shards:   v.GetInt("shards"),
		Workers:  v.GetInt("workers"),
		Duration: v.GetDuration("duration"),
		Reads:    v.GetInt("reads"),
		Keys:     v.GetInt("keys"),
		ZipfS:    v.GetFloat64("zipf-s"),
		ZipfV:    v.GetFloat64("zipf-v"),
		Seed:     v.GetInt64("seed"),
		Preload:  v.GetInt("preload"),
		HTTP:     v.GetString("http"),
		Pprof:    v.GetBool("pprof"),
		LogLevel: v.GetString("log-level"),
		LogFmt:   v.GetString("log-format"),
	}
}

// run drives the workload until cfg.Duration elapses or ctx is cancelled.
// Cache metrics are registered on reg; gatherer backs the /metrics route.
func run(ctx context.Context, cfg config, reg prometheus.Registerer, gatherer prometheus.Gatherer, log zerolog.Logger) (result, error) {
	if cfg.Keys < 1 {
		return result{}, fmt.Errorf("keys must be >= 1, got %d", cfg.Keys)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	metrics := pmet.New(reg, "lru", "bench", nil)
	c, err := syncache.NewSharded(cache.Options[string, string]{
		Capacity: cfg.Capacity,
		Metrics:  metrics,
	}, cfg.Shards)
	if err != nil {
		return result{}, err
	}

	if cfg.HTTP != "" {
		srv := &http.Server{Addr: cfg.HTTP, Handler: newRouter(gatherer, cfg.Pprof), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info().Str("addr", cfg.HTTP).Bool("pprof", cfg.Pprof).Msg("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("http server stopped")
			}
		}()
		defer func() { _ = srv.Close() }()
	}

	// Preload to get a realistic hit-rate.
	pl := cfg.Preload
	if pl == 0 {
		pl = cfg.Capacity / 2
	}
	for i := 0; i < pl; i++ {
		c.Put("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	log.Info().
		Int("cap", cfg.Capacity).
		Int("shards", c.Shards()).
		Int("workers", cfg.Workers).
		Int("keys", cfg.Keys).
		Dur("duration", cfg.Duration).
		Int64("seed", cfg.Seed).
		Msg("starting workload")

	var reads, writes, hits, misses, total atomic.Uint64
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			// rand.Rand and rand.Zipf are not goroutine-safe: one pair per worker.
			r := rand.New(rand.NewSource(cfg.Seed + int64(w)*9973))
			zipf := rand.NewZipf(r, cfg.ZipfS, cfg.ZipfV, uint64(cfg.Keys-1))
			if zipf == nil {
				return fmt.Errorf("invalid zipf parameters s=%v v=%v", cfg.ZipfS, cfg.ZipfV)
			}
			for ctx.Err() == nil {
				total.Add(1)
				k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
				if int(r.Int31n(100)) < cfg.Reads {
					reads.Add(1)
					if _, err := c.Get(k); err == nil {
						hits.Add(1)
					} else {
						misses.Add(1)
					}
				} else {
					writes.Add(1)
					c.Put(k, "v"+strconv.Itoa(r.Int()))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result{}, err
	}
	elapsed := time.Since(start)

	hitRate := 0.0
	if n := reads.Load(); n > 0 {
		hitRate = float64(hits.Load()) / float64(n) * 100
	}
	log.Info().
		Uint64("ops", total.Load()).
		Float64("ops_per_sec", float64(total.Load())/elapsed.Seconds()).
		Uint64("reads", reads.Load()).
		Uint64("writes", writes.Load()).
		Uint64("hits", hits.Load()).
		Uint64("misses", misses.Load()).
		Str("hit_rate", fmt.Sprintf("%.2f%%", hitRate)).
		Int("size", c.Size()).
		Dur("elapsed", elapsed).
		Msg("workload finished")

	return result{
		Ops:      total.Load(),
		Reads:    reads.Load(),
		Writes:   writes.Load(),
		Hits:     hits.Load(),
		Misses:   misses.Load(),
		Size:     c.Size(),
		Capacity: c.Capacity(),
		Shards:   c.Shards(),
	}, nil
}

func newRouter(gatherer prometheus.Gatherer, pprof bool) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	if pprof {
		r.Mount("/debug", middleware.Profiler())
	}
	return r
}
