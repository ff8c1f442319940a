package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application, loaded from the
// environment with an optional .env file.
type Config struct {
	Environment string
	Port        string

	// StorageDriver selects the backend: memory, sqlite or postgres.
	StorageDriver string
	SeedDemoData  bool

	// Postgres connection pieces.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Sqlite database file.
	SqlitePath string

	// S3 image uploads; disabled when Bucket is empty.
	S3Bucket string
	S3Region string
}

// Load reads configuration from the environment. A missing .env file
// is fine.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "true") == "true",
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "mealplanner"),
		DBPort:        getEnv("DB_PORT", "5432"),
		SqlitePath:    getEnv("SQLITE_PATH", "mealplanner.db"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", os.Getenv("AWS_REGION")),
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
