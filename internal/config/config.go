package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env           string
	LogLevel      string
	Port          int
	Backend       string // memory, file, sqlite, postgres
	PostgresDSN   string
	SQLitePath    string
	RecordsFile   string
	DefaultUser   string
	AdviceModel   string
	AdviceTimeout time.Duration
	CORSOrigin    string
}

// Load reads configuration from SLEEP_* environment variables with
// sensible defaults for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("sleep")
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 3000)
	v.SetDefault("storage_backend", "memory")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("sqlite_path", "data/sleep.db")
	v.SetDefault("records_file", "data/sleep_records.json")
	v.SetDefault("default_user", "user1")
	v.SetDefault("advice_model", "claude-3-5-haiku-latest")
	v.SetDefault("advice_timeout_seconds", 15)
	v.SetDefault("cors_origin", "http://localhost:5173")

	cfg := &Config{
		Env:           v.GetString("env"),
		LogLevel:      v.GetString("log_level"),
		Port:          v.GetInt("port"),
		Backend:       v.GetString("storage_backend"),
		PostgresDSN:   v.GetString("postgres_dsn"),
		SQLitePath:    v.GetString("sqlite_path"),
		RecordsFile:   v.GetString("records_file"),
		DefaultUser:   v.GetString("default_user"),
		AdviceModel:   v.GetString("advice_model"),
		AdviceTimeout: time.Duration(v.GetInt("advice_timeout_seconds")) * time.Second,
		CORSOrigin:    v.GetString("cors_origin"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "memory":
	case "file":
		if c.RecordsFile == "" {
			return errors.New("SLEEP_RECORDS_FILE is required when SLEEP_STORAGE_BACKEND=file")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SLEEP_SQLITE_PATH is required when SLEEP_STORAGE_BACKEND=sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("SLEEP_POSTGRES_DSN is required when SLEEP_STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("SLEEP_STORAGE_BACKEND must be one of: memory, file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("SLEEP_ENV must be one of: development, staging, production")
	}
	if c.AdviceTimeout <= 0 {
		return errors.New("SLEEP_ADVICE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}
