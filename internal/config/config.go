package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backend selectors.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	ApiPort string

	// Durable store
	StoreBackend string // "file" (default), "redis" or "mongo"
	DataDir      string // file backend root

	// MongoDB (store backend "mongo")
	MongoURI    string
	MongoDbName string

	// Redis (store backend "redis")
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Invoice numbering
	InvoiceNumberPrefix string
	InvoiceNumberWidth  int

	// Customer catalog: stored collections shorter than this are treated
	// as a legacy seed and rewritten.
	CustomerSeedMin int

	// Rate Limiting Defaults
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second

	// App Defaults
	AppName string
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.StoreBackend = getEnv("STORE_BACKEND", BackendFile)
	cfg.DataDir = getEnv("DATA_DIR", "./data")
	cfg.MongoURI = getEnv("MONGO_URI", "")
	cfg.MongoDbName = getEnv("MONGO_DB_NAME", "proinvoice")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.InvoiceNumberPrefix = getEnv("INVOICE_NUMBER_PREFIX", "INV-")
	cfg.AppName = getEnv("APP_NAME", "ProInvoice")

	switch cfg.StoreBackend {
	case BackendFile, BackendRedis, BackendMongo:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND: %s", cfg.StoreBackend)
	}
	if cfg.StoreBackend == BackendMongo && cfg.MongoURI == "" {
		return nil, fmt.Errorf("missing required environment variable: MONGO_URI")
	}

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.InvoiceNumberWidth, err = strconv.Atoi(getEnv("INVOICE_NUMBER_WIDTH", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVOICE_NUMBER_WIDTH: %w", err)
	}

	cfg.CustomerSeedMin, err = strconv.Atoi(getEnv("CUSTOMER_SEED_MIN", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid CUSTOMER_SEED_MIN: %w", err)
	}

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
