package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	DBDriver      string
	DBSource      string
	SessionSecret string

	// Owner seed credentials
	AdminName     string
	AdminUsername string
	AdminEmail    string
	AdminPassword string

	// Load development fixtures on boot
	SeedDev bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, using environment defaults")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "giftshop.db"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		AdminName:     getEnv("ADMIN_NAME", "Owner"),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SeedDev:       getEnv("SEED_DEV", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
