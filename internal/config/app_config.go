package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"PersonalFinance/database/postgres"
)

// AppConfig is decoded from the process environment, after an optional .env file.
type AppConfig struct {
	AppName  string `koanf:"APP_NAME"`
	AppEnv   string `koanf:"APP_ENV"`
	AppPort  string `koanf:"APP_PORT"`
	LogLevel string `koanf:"LOG_LEVEL"`

	DatabaseURL       string `koanf:"DATABASE_URL"`
	DBMaxOpenConns    int    `koanf:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int    `koanf:"DB_MAX_IDLE_CONNS"`
	DBConnectAttempts uint   `koanf:"DB_CONNECT_ATTEMPTS"`
	DBAutoMigrate     bool   `koanf:"DB_AUTO_MIGRATE"`

	RedisAddress  string `koanf:"REDIS_ADDRESS"`
	RedisPassword string `koanf:"REDIS_PASSWORD"`
	RedisDB       int    `koanf:"REDIS_DB"`

	RateLimitPerSecond float64 `koanf:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int     `koanf:"RATE_LIMIT_BURST"`
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		AppName:            "Personal Finance Tracker",
		AppEnv:             "development",
		AppPort:            "3000",
		LogLevel:           "debug",
		DatabaseURL:        postgres.DefaultURL,
		DBMaxOpenConns:     10,
		DBMaxIdleConns:     5,
		DBConnectAttempts:  5,
		DBAutoMigrate:      true,
		RateLimitPerSecond: 50,
		RateLimitBurst:     100,
	}
}

// LoadAppConfig reads .env when present and decodes the environment on top of the defaults.
func LoadAppConfig() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")
	// Empty variables are skipped so they do not blank out defaults.
	provider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(provider, nil); err != nil {
		return AppConfig{}, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := defaultAppConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c AppConfig) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.AppPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a port number, got %q", c.AppPort))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.DBMaxOpenConns < 1 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS must be at least 1"))
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		errs = append(errs, errors.New("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS"))
	}
	if c.DBConnectAttempts < 1 {
		errs = append(errs, errors.New("DB_CONNECT_ATTEMPTS must be at least 1"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, errors.New("REDIS_DB cannot be negative"))
	}
	if c.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be at least 1"))
	}

	return errors.Join(errs...)
}

func (c AppConfig) DatabaseConfig() postgres.Config {
	return postgres.Config{
		URL:             c.DatabaseURL,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnectAttempts: c.DBConnectAttempts,
		ConnectDelay:    time.Second,
	}
}

func (c AppConfig) RedisEnabled() bool {
	return c.RedisAddress != ""
}
