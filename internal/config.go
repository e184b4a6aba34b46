package internal

import (
	"os"
	"strconv"
	"time"

	"shopdemo/internal/analytics"
)

// Config carries the storefront's environment-driven settings. Every
// field has a default so the demo runs with nothing configured: no Redis
// means an in-memory cart, no Postgres means an in-memory order archive.
type Config struct {
	Port         string
	Env          string
	ProductsFile string
	RedisAddr    string
	PGConnString string
	CartTTL      time.Duration
	ShippingCost float64
	AbandonDelay time.Duration
}

func LoadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		ProductsFile: getEnv("PRODUCTS_FILE", "data/products.json"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		PGConnString: os.Getenv("PG_CONNSTRING"),
		CartTTL:      getDurationEnv("CART_TTL", 7*24*time.Hour),
		ShippingCost: getFloatEnv("SHIPPING_COST", analytics.DefaultShipping),
		AbandonDelay: getDurationEnv("ABANDON_DELAY", analytics.DefaultAbandonDelay),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func getFloatEnv(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
