package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
	PostgresHost      string
	PostgresPort      string
	PostgresSSLMode   string
	PostgresTimeZone  string
	StripeSecretKey   string
	StripeWebhookKey  string
	Currency          string
	BaseURL           string // absolute base for resolving product image paths
	FrontendURL       string // success/cancel redirect target
	ShippingCountries []string
	ProductsFile      string
	RedisURL          string // optional, catalog cache disabled when empty
	AdminToken        string // guards catalog mutations
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8089"),
		PostgresUser:      os.Getenv("POSTGRES_USER"),
		PostgresPassword:  os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:        os.Getenv("POSTGRES_DB"),
		PostgresHost:      os.Getenv("POSTGRES_HOST"),
		PostgresPort:      getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:   getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:  getEnv("POSTGRES_TIMEZONE", "Europe/Helsinki"),
		StripeSecretKey:   os.Getenv("STRIPE_API_KEY"),
		StripeWebhookKey:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Currency:          strings.ToLower(getEnv("CURRENCY", "eur")),
		BaseURL:           getEnv("BASE_URL", "https://fluffybites.net"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		ShippingCountries: splitCSV(getEnv("SHIPPING_COUNTRIES", "FI,SE,NO,DK,EE")),
		ProductsFile:      getEnv("PRODUCTS_FILE", "data/products.json"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AdminToken:        os.Getenv("ADMIN_TOKEN"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" || cfg.PostgresHost == "" ||
		cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitCSV(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
