package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/metrics"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-client limiter is kept.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	maxClients int
	trustProxy bool
	now        func() time.Time
	metrics    *metrics.Metrics

	mu          sync.Mutex
	clients     map[string]*clientLimiter
	lastCleanup time.Time
}

// NewRateLimiter creates a RateLimiter from cfg. A non-positive rate disables
// limiting. Rejections are counted in m, which may be nil.
func NewRateLimiter(cfg config.RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:      rate.Limit(cfg.RequestsPerSecond),
		burst:      burst,
		maxClients: cfg.MaxClients,
		trustProxy: cfg.TrustProxyHeaders,
		now:        time.Now,
		metrics:    m,
		clients:    make(map[string]*clientLimiter),
	}
}

// Allow reports whether a request from client may proceed now.
func (rl *RateLimiter) Allow(client string) bool {
	if rl.limit <= 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastCleanup) > idleLimiterTTL {
		rl.evictIdle(now)
	}

	c, ok := rl.clients[client]
	if !ok {
		if rl.maxClients > 0 && len(rl.clients) >= rl.maxClients {
			rl.evictIdle(now)
			if len(rl.clients) >= rl.maxClients {
				rl.evictOldest()
			}
		}
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// evictIdle drops limiters unused for idleLimiterTTL. Callers hold rl.mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleLimiterTTL {
			delete(rl.clients, key)
		}
	}
	rl.lastCleanup = now
}

// evictOldest drops the least recently seen limiter. Callers hold rl.mu.
func (rl *RateLimiter) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
		found      bool
	)
	for key, c := range rl.clients {
		if !found || c.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen, found = key, c.lastSeen, true
		}
	}
	if found {
		delete(rl.clients, oldestKey)
	}
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.clientKey(r)) {
			rl.metrics.ObserveRateLimited()
			w.Header().Set("Retry-After", "1")
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, "Rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by IP. Unless proxy headers are trusted,
// the socket peer recorded by PeerAddr is used, so header values sent by the
// client cannot select a fresh bucket.
func (rl *RateLimiter) clientKey(r *http.Request) string {
	addr := r.RemoteAddr
	if !rl.trustProxy {
		if peer, ok := PeerAddrFromContext(r.Context()); ok {
			addr = peer
		}
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
