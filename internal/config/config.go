package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/crowd_alert_system/internal/severity"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Severity policy: веса метрик при расчёте оценки, сумма должна быть 100
	SeverityWeights severity.Weights

	// Окно частоты тапов (скользящее, в секундах) и окно "недавних" тапов
	// для выдачи метрик тревоги
	TapFrequencyWindow time.Duration `env:"TAP_FREQUENCY_WINDOW" envDefault:"10s"`
	RecentTapsWindow   time.Duration `env:"RECENT_TAPS_WINDOW" envDefault:"60s"`

	// Радиусы и окно истории
	InitialRadiusKm  float64       `env:"INITIAL_RADIUS_KM" envDefault:"3"`
	DefaultNearbyKm  float64       `env:"DEFAULT_NEARBY_KM" envDefault:"10"`
	DefaultHistoryKm float64       `env:"DEFAULT_HISTORY_KM" envDefault:"50"`
	HistoryWindow    time.Duration `env:"HISTORY_WINDOW" envDefault:"168h"`

	// Webhook Config: асинхронная доставка событий рассылки
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

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
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),
		SeverityWeights: severity.Weights{
			Tap:       getEnvAsInt("SEVERITY_TAP_WEIGHT", severity.DefaultWeights.Tap),
			Frequency: getEnvAsInt("SEVERITY_FREQ_WEIGHT", severity.DefaultWeights.Frequency),
			Reporter:  getEnvAsInt("SEVERITY_REPORTER_WEIGHT", severity.DefaultWeights.Reporter),
		},
		TapFrequencyWindow: getEnvAsDuration("TAP_FREQUENCY_WINDOW", 10*time.Second),
		RecentTapsWindow:   getEnvAsDuration("RECENT_TAPS_WINDOW", 60*time.Second),
		InitialRadiusKm:    getEnvAsFloat("INITIAL_RADIUS_KM", 3),
		DefaultNearbyKm:    getEnvAsFloat("DEFAULT_NEARBY_KM", 10),
		DefaultHistoryKm:   getEnvAsFloat("DEFAULT_HISTORY_KM", 50),
		HistoryWindow:      getEnvAsDuration("HISTORY_WINDOW", 7*24*time.Hour),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.SeverityWeights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid severity weights: %w", err)
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
