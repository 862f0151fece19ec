// Package config provides configuration loading and validation for the
// linearkit service. Configuration files may be JSON or YAML; defaults are
// applied by the loader before validation.
package config

import (
	"fmt"
	"time"

	"github.com/c360/linearkit/errors"
)

// Config is the root application configuration
type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Metrics    MetricsConfig    `json:"metrics" yaml:"metrics"`
	Sessions   SessionsConfig   `json:"sessions" yaml:"sessions"`
	Containers ContainersConfig `json:"containers" yaml:"containers"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	Port           int      `json:"port" yaml:"port"`
	EnableCORS     bool     `json:"enable_cors" yaml:"enable_cors"`
	CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins"`
	MaxRequestSize int64    `json:"max_request_size" yaml:"max_request_size"`

	RateLimit RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
}

// RateLimitConfig configures request rate limiting. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// MetricsConfig configures the standalone Prometheus metrics server
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port" yaml:"port"`
	Path    string `json:"path" yaml:"path"`
}

// SessionsConfig configures the per-session container registry
type SessionsConfig struct {
	MaxSessions    int `json:"max_sessions" yaml:"max_sessions"`
	IdleTimeoutSec int `json:"idle_timeout_sec" yaml:"idle_timeout_sec"`
}

// IdleTimeout returns the configured idle timeout as a duration.
// Zero disables idle reaping.
func (s SessionsConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

// ContainersConfig configures per-session container construction
type ContainersConfig struct {
	// RingCapacity is the fixed capacity of each session's circular queue
	RingCapacity int `json:"ring_capacity" yaml:"ring_capacity"`
	// StackMaxSize bounds each session's stack; 0 means unbounded
	StackMaxSize int `json:"stack_max_size" yaml:"stack_max_size"`
	// QueueMaxSize bounds each session's queue; 0 means unbounded
	QueueMaxSize int `json:"queue_max_size" yaml:"queue_max_size"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills unset fields with sensible defaults
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.MaxRequestSize == 0 {
		c.Server.MaxRequestSize = 1 << 20 // 1 MiB
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.RateLimit.RequestsPerSecond > 0 && c.Server.RateLimit.Burst == 0 {
		c.Server.RateLimit.Burst = int(c.Server.RateLimit.RequestsPerSecond)
	}

	if c.Metrics.Port == 0 {
		c.Metrics.Port = 9090
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Sessions.MaxSessions == 0 {
		c.Sessions.MaxSessions = 256
	}
	if c.Sessions.IdleTimeoutSec == 0 {
		c.Sessions.IdleTimeoutSec = 1800
	}

	if c.Containers.RingCapacity == 0 {
		c.Containers.RingCapacity = 8
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("server.port %d out of range", c.Server.Port),
			"Config", "Validate", "server port check")
	}
	if c.Server.MaxRequestSize < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("server.max_request_size must not be negative"),
			"Config", "Validate", "request size check")
	}
	if c.Server.RateLimit.RequestsPerSecond < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("server.rate_limit.requests_per_second must not be negative"),
			"Config", "Validate", "rate limit check")
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
			return errors.WrapInvalid(
				fmt.Errorf("metrics.port %d out of range", c.Metrics.Port),
				"Config", "Validate", "metrics port check")
		}
		if c.Metrics.Port == c.Server.Port {
			return errors.WrapInvalid(
				fmt.Errorf("metrics.port must differ from server.port"),
				"Config", "Validate", "port collision check")
		}
	}

	if c.Sessions.MaxSessions < 1 {
		return errors.WrapInvalid(
			fmt.Errorf("sessions.max_sessions must be at least 1"),
			"Config", "Validate", "session limit check")
	}
	if c.Sessions.IdleTimeoutSec < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("sessions.idle_timeout_sec must not be negative"),
			"Config", "Validate", "idle timeout check")
	}

	if c.Containers.RingCapacity < 1 {
		return errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Config", "Validate", "ring capacity check")
	}
	if c.Containers.StackMaxSize < 0 || c.Containers.QueueMaxSize < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("container max sizes must not be negative"),
			"Config", "Validate", "container bounds check")
	}

	return nil
}
