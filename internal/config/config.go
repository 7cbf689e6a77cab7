package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Auth        AuthConfig
	Mongo       MongoConfig
	Data        DataConfig
	Logging     LoggingConfig
	Environment string
}

type ServerConfig struct {
	Host     string
	AuthPort int
	ReadPort int
	CRUDPort int
}

type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type DataConfig struct {
	Dir string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file beside the
// process is honored when present. Every key has a default, so Load never
// fails; the signing secret default exists for local development only.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Host:     getEnv("SERVER_HOST", "0.0.0.0"),
			AuthPort: getEnvInt("PORT", 8080),
			ReadPort: getEnvInt("PORT_READ", 5000),
			CRUDPort: getEnvInt("PORT_CRUD", 5001),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),
			JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 5)) * time.Minute,
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "tmto"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "."),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
