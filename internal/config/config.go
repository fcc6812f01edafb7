package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time is used for duration-typed settings
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Only the JWT secret is strictly required;
// everything else falls back to a sensible default so the service can be
// started with a minimal environment.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	JWTSecret     string        // secret used to sign JWTs
	AccessTTLMin  int           // access token time-to-live in minutes
	AdminEmail    string        // email of the built-in admin credential pair
	AdminPassword string        // password of the built-in admin credential pair
	PaymentDelay  time.Duration // simulated payment round-trip delay
	AMQPURL       string        // RabbitMQ URL for booking events (empty disables publishing)
}

// Load reads configuration values from environment variables and returns
// a Config.  The JWT secret is enforced by must() and a missing value
// causes the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 60),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@restaurant.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		PaymentDelay:  time.Duration(envInt("PAYMENT_DELAY_MS", 2000)) * time.Millisecond,
		AMQPURL:       os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when
// the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like getenv() but converts the retrieved string into an
// integer.  Invalid values fall back to the default.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("invalid int for %s: %q, using %d", key, s, def)
		return def
	}
	return n
}
