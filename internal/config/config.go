package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	// AuthURL is the base URL of the identity provider. It doubles as the
	// expected token issuer and audience; the JWKS document is published at
	// AuthURL + "/api/auth/jwks".
	AuthURL      string
	JWKSCacheTTL time.Duration

	CORSOrigins    []string
	LogDevelopment bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "todo_user"),
		DBPassword:     getEnv("DB_PASSWORD", "todo_pass"),
		DBName:         getEnv("DB_NAME", "todo_db"),
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		AuthURL:        getEnv("AUTH_URL", "http://localhost:3000"),
		JWKSCacheTTL:   time.Duration(getEnvInt("JWKS_CACHE_TTL_MINUTES", 60)) * time.Minute,
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		LogDevelopment: getEnvBool("LOG_DEVELOPMENT", false),
	}
}

func (c *Config) JWKSURL() string {
	return strings.TrimRight(c.AuthURL, "/") + "/api/auth/jwks"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}
