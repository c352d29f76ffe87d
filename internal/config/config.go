package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	Environment          string
	AppId                string
	CORSOrigins          string
	IngestURL            string // Base URL of the lead-ingestion service
	IngestTimeoutSeconds int    // 0 disables the client-side timeout
	MaxUploadMB          int    // Upload size ceiling for import files
	MaxImportRows        int    // Row ceiling for a single import batch
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		AppId:                getEnv("APP_ID", "go-outreach"),
		CORSOrigins:          getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001, http://localhost:8000"),
		IngestURL:            getEnv("INGEST_URL", "http://localhost:9000"),
		IngestTimeoutSeconds: getEnvInt("INGEST_TIMEOUT_SECONDS", 60),
		MaxUploadMB:          getEnvInt("MAX_UPLOAD_MB", 10),
		MaxImportRows:        getEnvInt("MAX_IMPORT_ROWS", 1000),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default %d\n", key, fallback)
	}
	return fallback
}
