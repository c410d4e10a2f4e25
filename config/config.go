package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// App holds the configuration loaded at startup
var App *Config

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	// Pagination defaults
	DefaultPageSize int
	MaxPageSize     int

	// Batch engine settings
	BatchSizeLimit int
	BatchChunkSize int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "voucherhub"),
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
		BatchSizeLimit:  getEnvInt("BATCH_SIZE_LIMIT", 10000),
		BatchChunkSize:  getEnvInt("BATCH_CHUNK_SIZE", 100),
	}

	App = config
	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}
