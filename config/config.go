package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "5000"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBUser           = "postgres"
	DefaultDBName           = "auth_app"
	DefaultTokenExpiryHours = 24
	DefaultFrontendOrigin   = "http://localhost:3000"
)

type Config struct {
	Env              string
	Port             string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBURL            string
	JWTSecret        string
	TokenExpiryHours int
	FrontendOrigin   string
}

func Load() *Config {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", DefaultPort),
		DBHost:           getEnv("DB_HOST", DefaultDBHost),
		DBPort:           getEnv("DB_PORT", DefaultDBPort),
		DBUser:           getEnv("DB_USER", DefaultDBUser),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", DefaultDBName),
		DBURL:            getEnv("DB_URL", ""),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
		FrontendOrigin:   getEnv("FRONTEND_URL", DefaultFrontendOrigin),
	}
}

// DatabaseURL returns the DB_URL override when set, otherwise a DSN composed
// from the individual DB_* settings.
func (c *Config) DatabaseURL() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// IsDevelopment reports whether the deployment runs in development mode,
// which relaxes the login rate limiter and the cookie Secure flag.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
