package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Бэкенды кэша результатов
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int           `toml:"port"`
	MaxPrincipal    float64       `toml:"max_principal"`
	MaxContribution float64       `toml:"max_contribution"`
	MaxDebt         float64       `toml:"max_debt"`
	MaxHomePrice    float64       `toml:"max_home_price"`
	MaxRate         float64       `toml:"max_rate"`
	RequestTimeout  time.Duration `toml:"request_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	CacheBackend    string        `toml:"cache_backend"`
	CacheSize       int           `toml:"cache_size"`
	CacheTTL        time.Duration `toml:"cache_ttl"`
	RedisAddr       string        `toml:"redis_addr"`
	OTELEndpoint    string        `toml:"otel_endpoint"`
	OTELServiceName string        `toml:"otel_service_name"`
	LogLevel        string        `toml:"log_level"`
	LogFormat       string        `toml:"log_format"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Port:            8000,
		MaxPrincipal:    1e9,
		MaxContribution: 1e9,
		MaxDebt:         1e9,
		MaxHomePrice:    1e9,
		MaxRate:         100,
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		CacheBackend:    CacheBackendMemory,
		CacheSize:       1024,
		CacheTTL:        10 * time.Minute,
		RedisAddr:       "localhost:6379",
		OTELServiceName: "compound-calc",
		LogLevel:        "INFO",
		LogFormat:       "text",
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем TOML-файл из CONFIG_FILE
// (если задан), затем переменные окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.MaxPrincipal = getEnvFloat("MAX_PRINCIPAL", cfg.MaxPrincipal)
	cfg.MaxContribution = getEnvFloat("MAX_CONTRIBUTION", cfg.MaxContribution)
	cfg.MaxDebt = getEnvFloat("MAX_DEBT", cfg.MaxDebt)
	cfg.MaxHomePrice = getEnvFloat("MAX_HOME_PRICE", cfg.MaxHomePrice)
	cfg.MaxRate = getEnvFloat("MAX_RATE", cfg.MaxRate)
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.CacheBackend = strings.ToLower(getEnvString("CACHE_BACKEND", cfg.CacheBackend))
	cfg.CacheSize = getEnvInt("CACHE_SIZE", cfg.CacheSize)
	cfg.CacheTTL = getEnvDuration("CACHE_TTL", cfg.CacheTTL)
	cfg.RedisAddr = getEnvString("REDIS_ADDR", cfg.RedisAddr)
	cfg.OTELEndpoint = getEnvString("OTEL_ENDPOINT", cfg.OTELEndpoint)
	cfg.OTELServiceName = getEnvString("OTEL_SERVICE_NAME", cfg.OTELServiceName)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvString("LOG_FORMAT", cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("unknown cache backend: %q", c.CacheBackend)
	}
	if c.CacheBackend == CacheBackendMemory && c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// Addr адрес HTTP-сервера
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
