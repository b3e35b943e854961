// Package configs reads runtime configuration from the environment.
// main loads a .env file first via godotenv.
package configs

import "os"

// Storage backends.
const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Config carries everything the server needs at startup.
type Config struct {
	Port          string
	JWTSecret     string
	Storage       string
	MongoURI      string
	MongoDatabase string
	PostmarkToken string
	EmailSender   string
}

// Load builds a Config from environment variables with development
// defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		Storage:       getEnv("STORAGE", StorageMemory),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "ecommerce"),
		PostmarkToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:   getEnv("EMAIL_SENDER", "shop@example.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
