package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Save store backends.
const (
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogDir      string
	Version     string

	// Telegram bot token used to verify mini-app initData payloads.
	BotToken string
	// AuthCacheSize and AuthCacheTTL tune the verified-initData cache.
	AuthCacheSize int
	AuthCacheTTL  time.Duration

	// SaveBackend selects where saves live: postgres or supabase.
	SaveBackend string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseTable      string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Version:     getEnv("VERSION", "dev"),
		BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		SaveBackend: getEnv("SAVE_BACKEND", BackendPostgres),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "sprout"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseTable:      getEnv("SUPABASE_TABLE", "farm_saves"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheSizeStr := getEnv("AUTH_CACHE_SIZE", "1024")
	cacheSize, err := strconv.Atoi(cacheSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CACHE_SIZE value: %w", err)
	}
	cfg.AuthCacheSize = cacheSize

	cacheTTLStr := getEnv("AUTH_CACHE_TTL", "5m")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_CACHE_TTL value: %w", err)
	}
	cfg.AuthCacheTTL = cacheTTL

	// The bot token is the root of identity verification; refuse to
	// start without it.
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable must be set")
	}

	switch cfg.SaveBackend {
	case BackendPostgres:
		// Database defaults are fine for local development.
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY must be set for the supabase backend")
		}
	default:
		return nil, fmt.Errorf("invalid SAVE_BACKEND value %q", cfg.SaveBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
