package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Validation ValidationConfig `mapstructure:"validation" validate:"required"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
}

// ValidationConfig contains settings for the citation endpoints.
type ValidationConfig struct {
	// DefaultStyle is used when a request omits the format.
	DefaultStyle string `mapstructure:"default_style"  validate:"required,oneof=apa mla"`
	MaxBatchSize int    `mapstructure:"max_batch_size" validate:"gt=0,lte=10000"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"gt=0"`
}

// RateLimitConfig configures the per-client token bucket.
// A zero RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst"               validate:"gte=0"`

	// TrustProxyHeaders keys clients by X-Forwarded-For / X-Real-IP instead
	// of the socket peer. Enable only behind a proxy that sets them.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`

	// MaxClients caps the number of tracked clients; zero means no cap.
	MaxClients int `mapstructure:"max_clients" validate:"gte=0"`
}
