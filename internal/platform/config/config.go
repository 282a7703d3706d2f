package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Session cookie settings. The cookie carries the opaque session token
	// that scopes every read and write.
	SessionCookieName   string
	SessionCookieMaxAge time.Duration

	CORSAllowedOrigins []string
	WriteRateLimit     string // ulule/limiter formatted rate, e.g. "60-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SESSION_COOKIE_NAME", "sessionId")
	viper.SetDefault("SESSION_COOKIE_MAX_AGE", "168h") // 7 days
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("WRITE_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "sessionId"
		log.Printf("Warning: SESSION_COOKIE_NAME not set. Defaulting to %s.\n", cfg.SessionCookieName)
	}

	maxAgeStr := viper.GetString("SESSION_COOKIE_MAX_AGE")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		maxAge = time.Hour * 24 * 7
		if maxAgeStr != "" {
			log.Printf("Warning: Invalid value for SESSION_COOKIE_MAX_AGE ('%s'). Defaulting to %s.\n", maxAgeStr, maxAge.String())
		}
	}
	cfg.SessionCookieMaxAge = maxAge

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.WriteRateLimit = viper.GetString("WRITE_RATE_LIMIT")

	return cfg, nil
}
