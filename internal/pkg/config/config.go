package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
// SSOT: 모든 설정은 .env 파일 또는 환경 변수에서 로드됨
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Lookup   LookupConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	URL             string // SSOT: DATABASE_URL
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

type LoggingConfig struct {
	Level         string
	Format        string
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

// LookupConfig holds name resolution and trend settings
type LookupConfig struct {
	TickersFile string // empty: built-in table
	ShortWindow int    // days
	LongWindow  int    // days
}

// Load loads configuration from .env file
// SSOT: .env 파일이 모든 설정의 유일한 진실 소스
func Load() (*Config, error) {
	// .env 파일이 없어도 계속 진행 (환경 변수에서 로드 시도)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8099"),
			Mode:         getEnv("GIN_MODE", "debug"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			Name:            getEnv("DB_NAME", "stocklens"),
			User:            getEnv("DB_USER", "stocklens"),
			Password:        getEnv("DB_PASSWORD", ""),
			URL:             getEnv("DATABASE_URL", "postgresql://stocklens@localhost:5432/stocklens?sslmode=disable"),
			MaxConns:        25,
			MinConns:        5,
			MaxConnLifetime: 1 * time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "debug"),
			Format:        getEnv("LOG_FORMAT", "pretty"),
			FileEnabled:   getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  getEnvInt("LOG_ROTATION_SIZE_MB", 100),
			RetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),
		},
		Lookup: LookupConfig{
			TickersFile: getEnv("TICKERS_FILE", ""),
			ShortWindow: getEnvInt("TREND_SHORT_WINDOW", 50),
			LongWindow:  getEnvInt("TREND_LONG_WINDOW", 200),
		},
	}

	if config.Lookup.ShortWindow < 1 || config.Lookup.LongWindow < 1 {
		return nil, fmt.Errorf("trend windows must be positive: short=%d long=%d",
			config.Lookup.ShortWindow, config.Lookup.LongWindow)
	}
	if config.Lookup.ShortWindow >= config.Lookup.LongWindow {
		return nil, fmt.Errorf("short window (%d) must be shorter than long window (%d)",
			config.Lookup.ShortWindow, config.Lookup.LongWindow)
	}

	return config, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
