package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host         string `envconfig:"HOST" default:"0.0.0.0"`
	Port         int    `envconfig:"PORT" default:"8080"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"15"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"15"`
	IdleTimeout  int    `envconfig:"IDLE_TIMEOUT" default:"120"`
}

// Field edits are sent on every keystroke, so the per-IP defaults are higher
// than a typical CRUD API.
type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"5000"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"600"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:"X-Request-Id"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("HTTP_SERVER_PORT out of range: %d", cfg.Server.Port)
	}
	return &cfg, nil
}
