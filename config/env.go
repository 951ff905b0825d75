package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Redis    RedisConfig
	DB       DBConfig
	Auth     AuthConfig
	Purchase PurchaseServiceConfig
	Gateway  GatewayConfig
	LogLevel string
}

type DBConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret string
	Disabled  bool
}

type PurchaseServiceConfig struct {
	ListenAddr      string
	SeedExampleData bool
}

type GatewayConfig struct {
	ListenAddr      string
	PurchaseAddr    string
	IngestRate      string
	DisplayTimezone string
	ImageBaseURL    string
	// TrustedProxies lists the proxies whose X-Forwarded-For is honored.
	// Empty means the socket peer is the client.
	TrustedProxies []string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		GetLogger().Info("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	cfg := Config{
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		DB: DBConfig{
			DSN: getEnv("PURCHASE_DSN", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Disabled:  getBool("AUTH_DISABLED", false),
		},
		Purchase: PurchaseServiceConfig{
			ListenAddr:      getEnv("PURCHASE_GRPC_LISTEN", ":50054"),
			SeedExampleData: getBool("SEED_EXAMPLE_DATA", false),
		},
		Gateway: GatewayConfig{
			ListenAddr:      getEnv("GATEWAY_ADDR", ":8080"),
			PurchaseAddr:    getEnv("PURCHASE_GRPC_ADDR", "localhost:50054"),
			IngestRate:      getEnv("INGEST_RATE", "60-M"),
			DisplayTimezone: getEnv("DISPLAY_TIMEZONE", "Europe/Berlin"),
			ImageBaseURL:    strings.TrimRight(getEnv("IMAGE_BASE_URL", "https://m.media-amazon.com/images/P"), "/"),
			TrustedProxies:  getList("TRUSTED_PROXIES"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	SetLogLevel(cfg.LogLevel)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
