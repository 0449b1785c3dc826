package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	Port          string
	DatabaseURL   string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment. JWT_SECRET and the admin
// bootstrap credentials are mandatory; the rest fall back to local defaults.
func Load() *Config {
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	adminEmail := getEnv("ADMIN_EMAIL", "")
	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getDatabaseURL(),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "realestate"),
		JWTSecret:     jwtSecret,
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}
}

func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "realestate")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
