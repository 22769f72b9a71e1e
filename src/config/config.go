package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	LogLevel string

	// Provider selects the upstream POS backend: "sumup" or "goodtill".
	Provider string

	SumUpAPIKey  string
	SumUpBaseURL string

	GoodTillBaseURL   string
	GoodTillSubdomain string

	JWTSecret          string
	SessionTokenExpiry time.Duration

	UpstreamTimeout  time.Duration
	MerchantCacheTTL time.Duration
	FetchLimit       int

	// UnknownStatusPolicy controls what the summary does with records whose
	// upstream status is neither a success nor a recognized failure term:
	// "skip" drops them from both counts (reported via skipped_records),
	// "fail" counts them as failed.
	UnknownStatusPolicy string

	AllowedOrigin string
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found. Relying on OS environment variables and defaults.")
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	provider := getEnv("PROVIDER", "sumup")
	if provider != "sumup" && provider != "goodtill" {
		log.Fatalf("FATAL: PROVIDER must be 'sumup' or 'goodtill', got '%s'", provider)
	}

	jwtSecret := getEnv("JWT_SECRET", "your-very-secure-and-long-jwt-secret-key-for-hs256-minimum-32-bytes")
	if jwtSecret == "your-very-secure-and-long-jwt-secret-key-for-hs256-minimum-32-bytes" {
		log.Println("WARNING: Using default insecure JWT_SECRET. Set JWT_SECRET environment variable for production.")
	}

	policy := getEnv("UNKNOWN_STATUS_POLICY", "skip")
	if policy != "skip" && policy != "fail" {
		log.Printf("WARNING: Invalid UNKNOWN_STATUS_POLICY '%s'. Using default 'skip'.", policy)
		policy = "skip"
	}

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Provider: provider,

		SumUpAPIKey:  getEnv("SUMUP_API_KEY", ""),
		SumUpBaseURL: getEnv("SUMUP_BASE_URL", "https://api.sumup.com/v0.1"),

		GoodTillBaseURL:   getEnv("GOODTILL_BASE_URL", "https://api.thegoodtill.com/api"),
		GoodTillSubdomain: getEnv("GOODTILL_SUBDOMAIN", ""),

		JWTSecret:          jwtSecret,
		SessionTokenExpiry: getEnvAsDuration("SESSION_TOKEN_EXPIRY", 12*time.Hour),

		UpstreamTimeout:  getEnvAsDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		MerchantCacheTTL: getEnvAsDuration("MERCHANT_CACHE_TTL", 12*time.Hour),
		FetchLimit:       getEnvAsInt("FETCH_LIMIT", 1000),

		UnknownStatusPolicy: policy,

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	if Cfg.Provider == "sumup" && Cfg.SumUpAPIKey == "" {
		log.Println("WARNING: SUMUP_API_KEY is not set. SumUp requests will fail with 401 until it is configured.")
	}
	if Cfg.Provider == "goodtill" && Cfg.GoodTillSubdomain == "" {
		log.Println("WARNING: GOODTILL_SUBDOMAIN is not set. GoodTill logins will need it supplied per request.")
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, Provider=%s, FetchLimit=%d",
		Cfg.Port, Cfg.LogLevel, Cfg.Provider, Cfg.FetchLimit)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
