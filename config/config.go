package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT           string
	MONGODB_URI    string
	MONGODB_DB     string
	ADMIN_PASSWORD string
	SESSION_SECRET string
	CORS_ORIGIN    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	MONGODB_URI = mustEnv("MONGODB_URI")
	MONGODB_DB = getEnv("MONGODB_DB", "academy")

	// ADMIN_PASSWORD accepts either a plaintext value or a bcrypt hash ($2...)
	ADMIN_PASSWORD = mustEnv("ADMIN_PASSWORD")
	SESSION_SECRET = mustEnv("SESSION_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
