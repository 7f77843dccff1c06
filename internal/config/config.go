package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server            ServerConfig
	JWTSecret         string
	TokenTTL          time.Duration
	AuthEnabled       bool
	ValidationEnabled bool
}

type ServerConfig struct {
	Port int
}

// defaultJWTSecret mirrors the key the service originally shipped with.
// Production deployments must override it via JWT_SECRET.
const defaultJWTSecret = "b7f3e2c9a1d44e0f8c6a9d3f5e2b7c1a"

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		tokenTTL = time.Hour
	}

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:          tokenTTL,
		AuthEnabled:       getEnvBool("AUTH_ENABLED", true),
		ValidationEnabled: getEnvBool("VALIDATION_ENABLED", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
