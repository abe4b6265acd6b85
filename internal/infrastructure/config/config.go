package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL               string
	Port                     string
	MongoURI                 string
	MongoDBName              string
	JWTSecret                string
	RedisURL                 string
	AccessTokenExpiryMinutes int
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		Port:                     getEnv("PORT", "8080"),
		MongoURI:                 getEnv("MONGODB_URI", ""),
		MongoDBName:              getEnv("MONGODB_DB_NAME", "bloghub"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		RedisURL:                 getEnv("REDIS_URL", ""),
		AccessTokenExpiryMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiryMinutes returns the access token lifetime in minutes.
func (c *Config) GetAccessTokenExpiryMinutes() int {
	return c.AccessTokenExpiryMinutes
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
