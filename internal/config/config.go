package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the console reads from the environment. A .env
// file in the working directory is honored in dev; real deployments set
// the variables directly.
type Config struct {
	Env  string
	Port int

	BackendURL      string
	BackendBasePath string
	Strict403       bool

	SessionStore  string // memory | file | redis
	SessionSecret string
	StateDir      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins []string
	OTLPEndpoint   string
}

func Load() Config {
	// best effort; missing .env is the normal case outside dev
	_ = godotenv.Load()

	return Config{
		Env:  getEnv("APP_ENV", "dev"),
		Port: getEnvInt("PORT", 8080),

		BackendURL:      getEnv("BACKEND_URL", "http://localhost:9090"),
		BackendBasePath: getEnv("BACKEND_BASE_PATH", "/api"),
		Strict403:       getEnvBool("STRICT_403", false),

		SessionStore:  getEnv("SESSION_STORE", "memory"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		StateDir:      getEnv("STATE_DIR", "."),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// Validate catches settings that would look fine until the first
// request. The file store encrypts sessions at rest, so selecting it
// without a secret is a misconfiguration, not a default.
func (c Config) Validate() error {
	switch c.SessionStore {
	case "", "memory", "redis":
	case "file":
		if c.SessionSecret == "" {
			return errors.New("SESSION_STORE=file requires SESSION_SECRET")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.SessionStore)
	}

	return nil
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			return fallback
		}

		return num
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}

		return b
	}

	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
