package config

import "time"

// RateLimitConfig defines settings for the auth rate limit middleware.
// When Enabled is false or no Redis client is available, limiting is
// disabled.  Limit is the number of requests allowed per client IP per
// Window.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  Defaults allow 20 auth attempts per minute per IP.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   envInt("RATE_LIMIT_LIMIT", 20),
		Window:  time.Duration(envInt("RATE_LIMIT_WINDOW_SEC", 60)) * time.Second,
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
