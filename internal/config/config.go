package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "file:dessertbook.db?cache=shared"
	defaultJWTTTL         = "24h"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultCookieSecure   = "false"
	defaultCookieSameSite = "Lax"
	defaultCookiePath     = "/"
	defaultImageStore     = "local"
	defaultImageDir       = "wwwroot/images/reviews"
	defaultRateWindow     = "1m"
	defaultLoginRate      = "10"
	defaultWriteRate      = "60"
	defaultShutdown       = "10s"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret      string
	JWTTTL         time.Duration
	CookieSecure   bool
	CookieSameSite string
	CookiePath     string

	ImageStore  string // local or s3
	ImageDir    string
	S3Bucket    string
	AWSRegion   string
	CORSOrigins []string

	RedisURL        string
	RateLimitWindow time.Duration
	LoginRateLimit  int
	WriteRateLimit  int

	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = parseDurationEnv("RATE_LIMIT_WINDOW", defaultRateWindow); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdown); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = parseIntEnv("LOGIN_RATE_LIMIT", defaultLoginRate); err != nil {
		return nil, err
	}
	if cfg.WriteRateLimit, err = parseIntEnv("WRITE_RATE_LIMIT", defaultWriteRate); err != nil {
		return nil, err
	}

	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath))

	cfg.ImageStore = strings.ToLower(strings.TrimSpace(getEnv("IMAGE_STORE", defaultImageStore)))
	cfg.ImageDir = strings.TrimSpace(getEnv("IMAGE_DIR", defaultImageDir))
	cfg.S3Bucket = strings.TrimSpace(os.Getenv("S3_BUCKET_NAME"))
	cfg.AWSRegion = strings.TrimSpace(os.Getenv("AWS_REGION"))
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%s image_store=%s rate_limit=%t cookie_secure=%t",
		cfg.AppEnv, cfg.Port, cfg.ImageStore, cfg.RedisURL != "", cfg.CookieSecure)
	return cfg, nil
}

// CookieMaxAge is the auth cookie lifetime in seconds.
func (c *Config) CookieMaxAge() int {
	return int(c.JWTTTL / time.Second)
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}
	if cfg.LoginRateLimit <= 0 || cfg.WriteRateLimit <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT and WRITE_RATE_LIMIT must be > 0")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	sameSite := strings.ToLower(cfg.CookieSameSite)
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	switch cfg.ImageStore {
	case "local":
		if cfg.ImageDir == "" {
			return fmt.Errorf("IMAGE_DIR must not be empty when IMAGE_STORE=local")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET_NAME must be set when IMAGE_STORE=s3")
		}
	default:
		return fmt.Errorf("IMAGE_STORE must be one of: local, s3")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
