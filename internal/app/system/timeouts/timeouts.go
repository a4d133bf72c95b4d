// Package timeouts holds the deadlines used for upstream API calls made
// while serving a request.
//
// Collection fetches that back a view's data fragment deliberately carry no
// deadline; they end when the browser goes away. Everything else picks one
// of these:
//   - Ping: health checks against the API root
//   - Short: single-record lookups
//   - Medium: user create, update and delete
//   - Long: operations that chain several upstream calls
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults used until Configure or ConfigureFromEnv changes them.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

// EnvPrefix prefixes the environment overrides, e.g. OCTOFIT_TIMEOUT_PING.
const EnvPrefix = "OCTOFIT_TIMEOUT_"

// Config holds timeout values. Zero fields are ignored by Configure.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

var (
	mu      sync.RWMutex
	current = defaults()
)

func defaults() Config {
	return Config{Ping: DefaultPing, Short: DefaultShort, Medium: DefaultMedium, Long: DefaultLong}
}

// Ping returns the health-check timeout.
func Ping() time.Duration { return Current().Ping }

// Short returns the single-record lookup timeout.
func Short() time.Duration { return Current().Short }

// Medium returns the mutation timeout.
func Medium() time.Duration { return Current().Medium }

// Long returns the multi-call timeout.
func Long() time.Duration { return Current().Long }

// Current returns a snapshot of the configured values.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Configure overrides the non-zero fields of cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	merge(&current, cfg)
}

// Reset restores the defaults. Tests use it.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}

func merge(dst *Config, src Config) {
	for _, f := range []struct {
		dst *time.Duration
		src time.Duration
	}{
		{&dst.Ping, src.Ping},
		{&dst.Short, src.Short},
		{&dst.Medium, src.Medium},
		{&dst.Long, src.Long},
	} {
		if f.src > 0 {
			*f.dst = f.src
		}
	}
}

// ConfigureFromEnv reads OCTOFIT_TIMEOUT_{PING,SHORT,MEDIUM,LONG} as Go
// durations ("2s", "500ms"). Missing or invalid values are skipped. It
// returns how many values were applied.
func ConfigureFromEnv() int {
	var cfg Config
	n := 0
	for name, dst := range map[string]*time.Duration{
		"PING":   &cfg.Ping,
		"SHORT":  &cfg.Short,
		"MEDIUM": &cfg.Medium,
		"LONG":   &cfg.Long,
	} {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
			n++
		}
	}
	Configure(cfg)
	return n
}

// WithTimeout is context.WithTimeout whose cancel func logs a warning when
// the deadline was what ended the operation.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create user")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
