package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds environment-derived defaults. Command-line flags override
// these at startup.
type Config struct {
	DBPath    string
	Addr      string
	AdminUser string
	LogPath   string
}

// Load reads a .env file if present and resolves the configuration from the
// environment.
func Load() *Config {
	// .env is optional; real deployments usually set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBPath:    getEnv("FIELDBASE_DB", "fieldbase.sqlite3"),
		Addr:      getEnv("FIELDBASE_ADDR", ":8080"),
		AdminUser: getEnv("FIELDBASE_ADMIN_USER", "Admin"),
		LogPath:   getEnv("FIELDBASE_LOG", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
