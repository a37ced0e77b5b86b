package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the app reads from the environment.
// Loaded once in main and passed down; no package-level state.
type Config struct {
	Port      string
	DBURL     string
	JWTSecret string

	StripeSecretKey     string
	StripeWebhookSecret string

	FrontendURL string
	CORSOrigin  string

	GoogleClientID         string
	GoogleClientSecret     string
	GoogleRedirectURL      string
	GoogleFrontendRedirect string

	SMTPFrom     string
	SMTPPassword string
	SMTPHost     string
	SMTPPort     string

	LogLevel string
	AppEnv   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBURL:     mustEnv("DB_URL"),
		JWTSecret: mustEnv("JWT_SECRET"),

		StripeSecretKey:     mustEnv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: mustEnv("STRIPE_WEBHOOK_SECRET"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),

		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:      getEnv("GOOGLE_REDIRECT_URL", ""),
		GoogleFrontendRedirect: getEnv("GOOGLE_FRONTEND_REDIRECT", ""),

		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		AppEnv:   getEnv("APP_ENV", "development"),
	}
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
