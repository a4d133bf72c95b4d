// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out a token bucket per key (usually the client IP).
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	idle     time.Duration // entries unused this long are dropped
	lastGC   time.Time
}

type visitor struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New allows limit requests per duration for each key, with the whole
// allowance usable as a burst.
func New(limit int, duration time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	return &Limiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(duration / time.Duration(limit)),
		burst:    limit,
		idle:     duration * 2,
		lastGC:   time.Now(),
	}
}

// Allow reports whether a request from key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(l.every, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.lim.AllowN(now, 1)
}

// Reset forgets key, restoring its full allowance.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.visitors, key)
}

// sweep drops idle entries at most once per idle period. Callers hold mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastGC) < l.idle {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.visitors, key)
		}
	}
	l.lastGC = now
}

// Mutations limits unsafe methods (anything but GET, HEAD and OPTIONS) per
// client IP. Rejected requests go to onLimit.
func (l *Limiter) Mutations(onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			if !l.Allow(ClientIP(r)) {
				w.Header().Set("Retry-After", "60")
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of r.RemoteAddr. Forwarding headers are
// ignored here; behind a trusted proxy, chi's middleware.RealIP rewrites
// RemoteAddr before this runs.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
