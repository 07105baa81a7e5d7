package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Pool sources
const (
	PoolSourceEmbedded = "embedded"
	PoolSourceMongo    = "mongo"
)

// Config holds the server configuration, read from the environment
type Config struct {
	Env         string `envconfig:"APP_ENV" default:"production"`
	Port        int    `envconfig:"PORT" default:"3000"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3001"`

	// Empty MongoURI disables result persistence and the mongo pool source
	MongoURI string `envconfig:"MONGO_URI"`
	MongoDB  string `envconfig:"MONGO_DB" default:"hmate"`

	// Empty RedisAddr disables quiz/roadmap caching and rate limiting
	RedisAddr          string `envconfig:"REDIS_ADDR"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`

	// Set only behind a reverse proxy that appends X-Forwarded-For
	TrustProxy bool `envconfig:"TRUST_PROXY" default:"false"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	JWTSecret     string `envconfig:"JWT_SECRET"`

	PoolSource string `envconfig:"POOL_SOURCE" default:"embedded"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// Accept redis://host:port as well as host:port
	cfg.RedisAddr = strings.TrimPrefix(cfg.RedisAddr, "redis://")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field ranges and cross-field requirements
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be non-negative")
	}
	switch c.PoolSource {
	case PoolSourceEmbedded:
	case PoolSourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("POOL_SOURCE=mongo requires MONGO_URI")
		}
	default:
		return fmt.Errorf("invalid POOL_SOURCE: %s (must be embedded or mongo)", c.PoolSource)
	}
	if c.AdminPassword != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters when ADMIN_PASSWORD is set")
	}
	return nil
}

// AdminEnabled reports whether admin login is configured
func (c *Config) AdminEnabled() bool {
	return c.AdminPassword != ""
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, FrontendURL=%s, Mongo=%t, Redis=%t, RateLimit=%d/min, Admin=%t, PoolSource=%s, TrustProxy=%t}",
		c.Env, c.Port, c.FrontendURL, c.MongoURI != "", c.RedisAddr != "", c.RateLimitPerMinute, c.AdminEnabled(), c.PoolSource, c.TrustProxy)
}
