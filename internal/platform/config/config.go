package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureDefaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// CORS
	CORSOrigins     []string
	CORSAllowSuffix string

	// RateLimit uses the ulule/limiter format, e.g. "300-M".
	RateLimit string

	DBMaxConns        int32
	DBMinConns        int32
	MigrationsEnabled bool

	// Tracing
	OTelEnabled      bool
	OTelEndpoint     string
	OTelSamplerRatio float64
	ServiceVersion   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("CORS_ALLOW_SUFFIX", ".vercel.app")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 0)
	v.SetDefault("MIGRATIONS_ENABLED", true)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SAMPLER_RATIO", 1.0)
	v.SetDefault("SERVICE_VERSION", "dev")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("DATABASE_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGIN")),
		CORSAllowSuffix:   v.GetString("CORS_ALLOW_SUFFIX"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		DBMaxConns:        v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:        v.GetInt32("DB_MIN_CONNS"),
		MigrationsEnabled: v.GetBool("MIGRATIONS_ENABLED"),
		OTelEnabled:       v.GetBool("OTEL_ENABLED"),
		OTelEndpoint:      v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelSamplerRatio:  v.GetFloat64("OTEL_SAMPLER_RATIO"),
		ServiceVersion:    v.GetString("SERVICE_VERSION"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureDefaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.OTelSamplerRatio < 0 || cfg.OTelSamplerRatio > 1 {
		log.Printf("Warning: Invalid value for OTEL_SAMPLER_RATIO (%v). Defaulting to 1.\n", cfg.OTelSamplerRatio)
		cfg.OTelSamplerRatio = 1
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
