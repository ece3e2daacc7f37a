package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Командный бэкенд (REST + push-канал)
	BackendBaseURL string        `env:"BACKEND_BASE_URL"`
	BackendWSURL   string        `env:"BACKEND_WS_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// Параметры пайплайна согласования
	PollInterval         time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
	StreamReconnectDelay time.Duration `env:"STREAM_RECONNECT_DELAY" envDefault:"2s"`

	// Тактическое воспроизведение
	HistoryWindowHours int           `env:"HISTORY_WINDOW_HOURS" envDefault:"6"`
	ReplayStepInterval time.Duration `env:"REPLAY_STEP_INTERVAL" envDefault:"100ms"`

	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Кеш позиций для прогрева при рестарте
	PositionCacheTTL time.Duration `env:"POSITION_CACHE_TTL" envDefault:"5m"`

	// Siren Config - внешнее оповещение о критических тревогах
	SirenWebhookURL string        `env:"SIREN_WEBHOOK_URL"`
	SirenSecret     string        `env:"SIREN_WEBHOOK_SECRET"`
	SirenTimeout    time.Duration `env:"SIREN_TIMEOUT" envDefault:"5s"`
	SirenMaxRetries int           `env:"SIREN_MAX_RETRIES" envDefault:"3"`
	SirenBaseDelay  time.Duration `env:"SIREN_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		BackendBaseURL:       os.Getenv("BACKEND_BASE_URL"),
		BackendWSURL:         os.Getenv("BACKEND_WS_URL"),
		BackendTimeout:       getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		PollInterval:         getEnvAsDuration("POLL_INTERVAL", 3*time.Second),
		StreamReconnectDelay: getEnvAsDuration("STREAM_RECONNECT_DELAY", 2*time.Second),
		HistoryWindowHours:   getEnvAsInt("HISTORY_WINDOW_HOURS", 6),
		ReplayStepInterval:   getEnvAsDuration("REPLAY_STEP_INTERVAL", 100*time.Millisecond),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		PositionCacheTTL:     getEnvAsDuration("POSITION_CACHE_TTL", 5*time.Minute),
		SirenWebhookURL:      os.Getenv("SIREN_WEBHOOK_URL"),
		SirenSecret:          os.Getenv("SIREN_WEBHOOK_SECRET"),
		SirenTimeout:         getEnvAsDuration("SIREN_TIMEOUT", 5*time.Second),
		SirenMaxRetries:      getEnvAsInt("SIREN_MAX_RETRIES", 3),
		SirenBaseDelay:       getEnvAsDuration("SIREN_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is required")
	}
	if cfg.BackendWSURL == "" {
		return nil, fmt.Errorf("BACKEND_WS_URL environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
