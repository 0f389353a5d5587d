package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	StorageBackendPostgres = "postgres"
	StorageBackendPebble   = "pebble"
	StorageBackendMemory   = "memory"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "journal-entry-store"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage
	StorageBackend string
	DatabaseURL    string
	RunMigrations  bool
	PebbleDir      string
	PebbleFsync    string // always | interval | never

	// Journal entries
	ProgramID           string
	RentLamportsPerByte int64 `mapstructure:"RENT_LAMPORTS_PER_BYTE_YEAR"`
	RentExemptionYears  int64
	EnableAirdrop       bool
	AirdropMaxLamports  int64

	// Authentication
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SignatureMaxSkew  time.Duration

	// HTTP surface
	RateLimit          string // ulule/limiter formatted rate, e.g. "300-M"
	LoginRateLimit     string
	CORSAllowedOrigins []string

	// Analytics
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_BACKEND", StorageBackendPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("PEBBLE_DIR", "data/journal")
	v.SetDefault("PEBBLE_FSYNC", "always")
	v.SetDefault("PROGRAM_ID", domain.DefaultProgramID)
	v.SetDefault("RENT_LAMPORTS_PER_BYTE_YEAR", 3480)
	v.SetDefault("RENT_EXEMPTION_YEARS", 2)
	v.SetDefault("ENABLE_AIRDROP", true)
	v.SetDefault("AIRDROP_MAX_LAMPORTS", 2_000_000_000)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("SIGNATURE_MAX_SKEW", "5m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		StorageBackend:      strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		RunMigrations:       v.GetBool("RUN_MIGRATIONS"),
		PebbleDir:           v.GetString("PEBBLE_DIR"),
		PebbleFsync:         strings.ToLower(v.GetString("PEBBLE_FSYNC")),
		ProgramID:           v.GetString("PROGRAM_ID"),
		RentLamportsPerByte: v.GetInt64("RENT_LAMPORTS_PER_BYTE_YEAR"),
		RentExemptionYears:  v.GetInt64("RENT_EXEMPTION_YEARS"),
		EnableAirdrop:       v.GetBool("ENABLE_AIRDROP"),
		AirdropMaxLamports:  v.GetInt64("AIRDROP_MAX_LAMPORTS"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		LoginRateLimit:      v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTExpiryDuration = durationOrDefault(v.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")
	cfg.SignatureMaxSkew = durationOrDefault(v.GetString("SIGNATURE_MAX_SKEW"), 5*time.Minute, "SIGNATURE_MAX_SKEW")

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTSecret == defaultJWTSecret && cfg.IsProduction {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	switch cfg.StorageBackend {
	case StorageBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND=%s", StorageBackendPostgres)
		}
	case StorageBackendPebble:
		if cfg.PebbleDir == "" {
			return nil, fmt.Errorf("PEBBLE_DIR is required when STORAGE_BACKEND=%s", StorageBackendPebble)
		}
	case StorageBackendMemory:
		log.Println("Warning: STORAGE_BACKEND=memory keeps journal entries only for the life of the process.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want postgres, pebble or memory)", cfg.StorageBackend)
	}

	if _, err := domain.ParsePublicKey(cfg.ProgramID); err != nil {
		return nil, fmt.Errorf("invalid PROGRAM_ID: %w", err)
	}

	rent := domain.Rent{LamportsPerByteYear: cfg.RentLamportsPerByte, ExemptionYears: cfg.RentExemptionYears}
	if err := rent.Validate(domain.JournalEntrySpace); err != nil {
		return nil, fmt.Errorf("invalid rent configuration: %w", err)
	}

	if cfg.IsProduction && cfg.EnableAirdrop {
		log.Println("Warning: ENABLE_AIRDROP ignored in production.")
		cfg.EnableAirdrop = false
	}

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics are disabled.")
	}

	return cfg, nil
}

func durationOrDefault(raw string, def time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
