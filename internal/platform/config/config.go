package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort    string
	CorpusPath string
	LogLevel   string

	JWTKey []byte
	JWTExp time.Duration

	// Empty RedisAddr disables answer check rate limiting.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CheckRateLimit  int
	CheckRateWindow time.Duration

	// Cron expression for re-reading the corpus; empty disables scheduled reloads.
	ReloadCron string
}

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. Not for production.
const DefaultJWTSecret = "defaultsecret"

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = FromEnv()
}

// FromEnv builds a Config from the current environment without touching AppConfig.
func FromEnv() *Config {
	return &Config{
		APIPort:         getEnv("API_PORT", "8080"),
		CorpusPath:      getEnv("CORPUS_PATH", "problems.txt"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		JWTKey:          []byte(getEnv("JWT_SECRET", DefaultJWTSecret)),
		JWTExp:          time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		CheckRateLimit:  getEnvAsInt("CHECK_RATE_LIMIT", 30),
		CheckRateWindow: time.Duration(getEnvAsInt("CHECK_RATE_WINDOW_SECONDS", 60)) * time.Second,
		ReloadCron:      getEnv("RELOAD_CRON", ""),
	}
}

// UsesDefaultJWTSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return string(c.JWTKey) == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
