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
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr   string        `env:"REDIS_ADDR"`
	RedisPass   string        `env:"REDIS_PASSWORD"`
	RedisDB     int           `env:"REDIS_DB" envDefault:"0"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"10s"`

	// Archive Config
	ArchiveRetryDelay time.Duration `env:"ARCHIVE_RETRY_DELAY" envDefault:"1s"`
	ArchiveMaxRetries int           `env:"ARCHIVE_MAX_RETRIES" envDefault:"3"`

	// Simulation Config
	TickInterval     time.Duration `env:"TICK_INTERVAL" envDefault:"2s"`
	AircraftMin      int           `env:"AIRCRAFT_MIN" envDefault:"10"`
	AircraftMax      int           `env:"AIRCRAFT_MAX" envDefault:"20"`
	SpawnMaxAttempts int           `env:"SPAWN_MAX_ATTEMPTS" envDefault:"50"`
	ParallelCutoff   int           `env:"PARALLEL_CUTOFF" envDefault:"0"`
	RandomSeed       uint64        `env:"RANDOM_SEED" envDefault:"0"`

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
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		SnapshotTTL:       getEnvAsDuration("SNAPSHOT_TTL", 10*time.Second),
		ArchiveRetryDelay: getEnvAsDuration("ARCHIVE_RETRY_DELAY", time.Second),
		ArchiveMaxRetries: getEnvAsInt("ARCHIVE_MAX_RETRIES", 3),
		TickInterval:      getEnvAsDuration("TICK_INTERVAL", 2*time.Second),
		AircraftMin:       getEnvAsInt("AIRCRAFT_MIN", 10),
		AircraftMax:       getEnvAsInt("AIRCRAFT_MAX", 20),
		SpawnMaxAttempts:  getEnvAsInt("SPAWN_MAX_ATTEMPTS", 50),
		ParallelCutoff:    getEnvAsInt("PARALLEL_CUTOFF", 0),
		RandomSeed:        getEnvAsUint64("RANDOM_SEED", 0),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность параметров симуляции
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %v", c.TickInterval)
	}
	if c.AircraftMin < 1 {
		return fmt.Errorf("AIRCRAFT_MIN must be at least 1, got %d", c.AircraftMin)
	}
	if c.AircraftMin > c.AircraftMax {
		return fmt.Errorf("AIRCRAFT_MIN (%d) must not exceed AIRCRAFT_MAX (%d)", c.AircraftMin, c.AircraftMax)
	}
	if c.SpawnMaxAttempts < 1 {
		return fmt.Errorf("SPAWN_MAX_ATTEMPTS must be at least 1, got %d", c.SpawnMaxAttempts)
	}
	return nil
}

// ArchiveEnabled - архив столкновений включается только при заданной БД
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// RedisEnabled - кеш снимков и очередь архива работают только при заданном адресе Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
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

// getEnvAsUint64 возвращает значение переменной окружения как uint64 или значение по умолчанию
func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
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
