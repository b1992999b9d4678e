package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost        string
	AppPort        string
	SQLitePath     string
	AllowedOrigins []string
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppHost:        getEnv("APP_HOST", "0.0.0.0"),
		AppPort:        getEnv("APP_PORT", "5000"),
		SQLitePath:     getEnv("SQLITE_PATH", "database.db"),
		AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://frontend:8080,http://127.0.0.1:8080")),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
