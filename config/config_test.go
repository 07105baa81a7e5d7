package config

import (
	"os"
	"strings"
	"testing"
)

// unsetenv clears key for the duration of the test
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "MONGO_URI", "POOL_SOURCE", "ADMIN_PASSWORD", "RATE_LIMIT_PER_MINUTE", "TRUST_PROXY"} {
		unsetenv(t, key)
	}
	t.Setenv("REDIS_ADDR", "redis://cache:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 3000 || cfg.Env != "production" {
		t.Errorf("defaults not applied: %s", cfg)
	}
	if cfg.RedisAddr != "cache:6379" {
		t.Errorf("RedisAddr = %q, want scheme stripped", cfg.RedisAddr)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
	if cfg.PoolSource != PoolSourceEmbedded {
		t.Errorf("PoolSource = %q", cfg.PoolSource)
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Env: "test", Port: 8080, PoolSource: PoolSourceEmbedded}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"bad env", func(c *Config) { c.Env = "staging" }, "invalid environment"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"negative rate", func(c *Config) { c.RateLimitPerMinute = -1 }, "RATE_LIMIT_PER_MINUTE"},
		{"mongo pool without uri", func(c *Config) { c.PoolSource = PoolSourceMongo }, "requires MONGO_URI"},
		{"unknown pool source", func(c *Config) { c.PoolSource = "s3" }, "invalid POOL_SOURCE"},
		{"short secret", func(c *Config) { c.AdminPassword = "pw"; c.JWTSecret = "short" }, "JWT_SECRET"},
		{"admin ok", func(c *Config) {
			c.AdminPassword = "pw"
			c.JWTSecret = strings.Repeat("x", 32)
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
