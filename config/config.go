package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "8080"
	defaultDBDriver = "sqlite"
	defaultDSN      = "auction-house.db"
)

// Config holds process configuration resolved from the environment.
type Config struct {
	Port        string
	DBDriver    string
	DatabaseDSN string
	SeedDemo    bool
}

// Load reads an optional .env file and resolves configuration with
// defaults. A missing .env is not an error; the environment wins.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", defaultPort),
		DBDriver:    getenv("DB_DRIVER", defaultDBDriver),
		DatabaseDSN: getenv("DATABASE_DSN", defaultDSN),
		SeedDemo:    os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
