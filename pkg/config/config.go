package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all process-wide settings. It is built once in main and
// passed to each component; nothing mutates it after Load returns.
type Config struct {
	Port            string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	BcryptCost      int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisURL  string
	RateLimit string

	LogLevel string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 720 * time.Hour // 30 days
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	bcryptCost := bcrypt.DefaultCost
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if parsed, err := strconv.Atoi(cost); err == nil && parsed >= bcrypt.MinCost && parsed <= bcrypt.MaxCost {
			bcryptCost = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		BcryptCost:       bcryptCost,
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getEnv("POSTGRES_DB", "taskengine"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RateLimit:        getEnv("RATE_LIMIT", "200-M"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// PostgresDSN assembles the connection string consumed by the gorm driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
