package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	AppEnv      string
	DataDir     string
	JWTSecret   string
	StoreDriver string
	RedisURL    string
	CatalogPath string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		AppEnv:      getenv("APP_ENV", "development"),
		DataDir:     getenv("DATA_DIR", "./data"),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret"),
		StoreDriver: getenv("STORE_DRIVER", "file"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	if cfg.AppEnv == "production" && os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set in production")
	}
	if cfg.StoreDriver == "redis" && cfg.RedisURL == "" {
		log.Fatal("REDIS_URL must be set when STORE_DRIVER=redis")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
