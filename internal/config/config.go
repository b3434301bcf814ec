package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devJwtSecret = "flowa-dev-secret"

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	SMTP       SMTPConfig
	OAuth      OAuthConfig
	Generation GenerationConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	Storage            string // "postgres" or "memory"
	EventTransport     string // "nats" or "channel"
}

type DatabaseConfig struct {
	Connection  string
	MaxIdle     int
	MaxOpen     int
	SlowQueryMs int
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type GenerationConfig struct {
	DefaultModel         string
	DefaultTemperature   float64
	DefaultMaxTokens     int
	DefaultContentLength int
	MaxBatchCount        int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
			Storage:            getEnv("STORAGE", "postgres"),
			EventTransport:     getEnv("EVENT_TRANSPORT", "nats"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			MaxIdle:     getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpen:     getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			SlowQueryMs: getEnvAsInt("DB_SLOW_QUERY_MS", 200),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Flowa"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:5000/api/auth/google/callback"),
		},
		Generation: GenerationConfig{
			DefaultModel:         getEnv("AI_DEFAULT_MODEL", "openai"),
			DefaultTemperature:   getEnvAsFloat("AI_DEFAULT_TEMPERATURE", 0.7),
			DefaultMaxTokens:     getEnvAsInt("AI_DEFAULT_MAX_TOKENS", 1000),
			DefaultContentLength: getEnvAsInt("AI_DEFAULT_CONTENT_LENGTH", 500),
			MaxBatchCount:        getEnvAsInt("AI_MAX_BATCH_COUNT", 20),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ResolveJwtSecret returns the signing secret. Outside development an empty
// secret is a fatal misconfiguration; in development a fixed secret is used.
func (c *Config) ResolveJwtSecret() (secret string, usedDefault bool, ok bool) {
	if c.Auth.JwtSecret != "" {
		return c.Auth.JwtSecret, false, true
	}
	if c.App.Environment == "development" || c.App.Environment == "test" {
		return devJwtSecret, true, true
	}
	return "", false, false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// OtelEnabled reports whether tracing export is switched on.
func OtelEnabled() bool {
	return getEnvAsBool("OTEL_ENABLED", false)
}
