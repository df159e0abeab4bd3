package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	devSessionSecret = "dev-session-secret-change-me"
)

type Config struct {
	AppEnv        string
	DBDriver      string
	DBDSN         string
	ServerPort    string
	SessionSecret string
	LogLevel      string
	GinMode       string

	// внешний API дилеров и сервис анализа тональности
	BackendURL       string
	SentimentURL     string
	SentimentWorkers int
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv собирает конфигурацию из произвольного источника переменных.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppEnv:        getenv("APP_ENV"),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER")),
		DBDSN:         getenv("DB_DSN"),
		ServerPort:    getenv("SERVER_PORT"),
		SessionSecret: getenv("SESSION_SECRET"),
		LogLevel:      strings.ToLower(getenv("LOG_LEVEL")),
		GinMode:       getenv("GIN_MODE"),
		BackendURL:    getenv("backend_url"),
		SentimentURL:  getenv("sentiment_analyzer_url"),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
	}
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "dealership.db"
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return nil, errors.New("DB_DSN is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		if cfg.AppEnv != "development" {
			return nil, errors.New("SESSION_SECRET is not set")
		}
		cfg.SessionSecret = devSessionSecret
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = "http://localhost:3030"
	}
	if cfg.SentimentURL == "" {
		cfg.SentimentURL = "http://localhost:5050/"
	}

	cfg.SentimentWorkers = 1
	if raw := getenv("SENTIMENT_WORKERS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SENTIMENT_WORKERS %q", raw)
		}
		cfg.SentimentWorkers = n
	}

	return cfg, nil
}
