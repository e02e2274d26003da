package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort        string
	JWTSecret         string
	DBPath            string
	TokenTTL          time.Duration
	BcryptCost        int
	AuthRatePerMinute int
}

// Load reads the configuration from the environment, picking up a .env
// file first when one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "3000"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		DBPath:            getEnv("DB_PATH", "filedepot.db"),
		TokenTTL:          getEnvDuration("TOKEN_TTL", time.Hour),
		BcryptCost:        getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		AuthRatePerMinute: getEnvInt("AUTH_RATE_PER_MINUTE", 30),
	}

	log.Printf("Config loaded - ServerPort: %s, DBPath: %s", cfg.ServerPort, cfg.DBPath)
	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
