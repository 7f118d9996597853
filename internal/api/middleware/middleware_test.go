package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/logger"
	"github.com/phrazzld/citecheck/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var seen string
	h := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	t.Run("generates_trace_id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(TraceHeader))
	})

	t.Run("reuses_incoming_uuid", func(t *testing.T) {
		const incoming = "0b6c5d62-3f7e-4b3a-9d4e-2f1a7c8b9e10"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, incoming, seen)
	})

	t.Run("ignores_malformed_incoming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceHeader, "not-a-uuid\n")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\n", seen)
		assert.NotEmpty(t, seen)
	})
}

func TestRecoverer(t *testing.T) {
	buf, _ := logger.SetupTestLogger(t)

	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom reading /etc/citecheck/rules/apa.yaml"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/citations/validate", nil)
	req = req.WithContext(shared.WithTraceID(req.Context(), "trace-1"))
	w := httptest.NewRecorder()

	require.NotPanics(t, func() { h.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body shared.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body.Error, "boom reading")
	assert.NotContains(t, body.Error, "/etc/citecheck")
	assert.Equal(t, "trace-1", body.TraceID)

	logger.AssertLogField(t, buf, "level", "ERROR")
	assert.NotContains(t, buf.String(), "/etc/citecheck")
}

func TestRecoverer_PassesThrough(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestBodyLimit(t *testing.T) {
	var readErr error
	h := BodyLimit(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short")))
	assert.NoError(t, readErr)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("far too long for the limit")))
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}, nil)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, rl.Allow("10.0.0.2"), "clients are limited independently")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "one token refilled")
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}, nil)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(2 * idleLimiterTTL)
	rl.Allow("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "a")
	assert.Contains(t, rl.clients, "b")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0, Burst: 0}, nil)
	for i := 0; i < 100; i++ {
		require.True(t, rl.Allow("x"))
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}, nil)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestRateLimiter_CountsRejections(t *testing.T) {
	m := metrics.New()
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}, m)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, scrape(t, m), "citecheck_rate_limited_total 1")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Post("/api/citations/validate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/citations/validate", nil),
		httptest.NewRequest(http.MethodPost, "/api/citations/validate", nil),
		httptest.NewRequest(http.MethodGet, "/teapot", nil),
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	body := scrape(t, m)
	assert.Contains(t, body, `citecheck_http_requests_total{code="200",method="POST",route="/api/citations/validate"} 2`)
	assert.Contains(t, body, `citecheck_http_requests_total{code="418",method="GET",route="/teapot"} 1`)
	assert.Contains(t, body, `citecheck_http_requests_total{code="404",method="GET",route="unmatched"} 1`)
}

func TestRateLimiter_CapsTrackedClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1, MaxClients: 3}, nil)
	rl.now = func() time.Time { return now }

	for _, client := range []string{"a", "b", "c", "d", "e"} {
		rl.Allow(client)
		now = now.Add(time.Second)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.clients, 3)
	assert.NotContains(t, rl.clients, "a")
	assert.NotContains(t, rl.clients, "b")
	assert.Contains(t, rl.clients, "e")
}

func TestRateLimiter_ClientKey(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		expected   string
	}{
		{name: "socket_peer_by_default", trustProxy: false, expected: "203.0.113.7"},
		{name: "rewritten_address_when_trusted", trustProxy: true, expected: "198.51.100.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, TrustProxyHeaders: tc.trustProxy}, nil)

			var key string
			h := PeerAddr(chiMiddleware.RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				key = rl.clientKey(r)
			})))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.7:4000"
			req.Header.Set("X-Forwarded-For", "198.51.100.1")
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestRateLimiter_ClientKeyWithoutPeerAddr(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.5:1111"
	assert.Equal(t, "192.0.2.5", rl.clientKey(req))

	req.RemoteAddr = "not-a-hostport"
	assert.Equal(t, "not-a-hostport", rl.clientKey(req))
}
