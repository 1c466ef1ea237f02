package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Email      EmailConfig
	Scheduling SchedulingConfig
	Lock       LockConfig
	Metrics    MetricsConfig
}

type AppConfig struct {
	Name            string
	BusinessName    string
	Env             string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
	Migrate  bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EmailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SchedulingConfig struct {
	Timezone                string
	SlotStepMinutes         int
	ConflictDurationMinutes int
	DefaultSlotDuration     int
	StorageTimeout          time.Duration
}

// Location resolves the business timezone, falling back to UTC.
func (c SchedulingConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LockConfig struct {
	Backend string
	TTL     time.Duration
	Wait    time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			BusinessName:    v.GetString("BUSINESS_NAME"),
			Env:             v.GetString("APP_ENV"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Email: EmailConfig{
			Enabled:  v.GetBool("EMAIL_ENABLED"),
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     v.GetString("EMAIL_FROM"),
		},
		Scheduling: SchedulingConfig{
			Timezone:                v.GetString("BUSINESS_TIMEZONE"),
			SlotStepMinutes:         v.GetInt("SLOT_STEP_MINUTES"),
			ConflictDurationMinutes: v.GetInt("CONFLICT_DURATION_MINUTES"),
			DefaultSlotDuration:     v.GetInt("DEFAULT_SLOT_DURATION"),
			StorageTimeout:          v.GetDuration("STORAGE_TIMEOUT"),
		},
		Lock: LockConfig{
			Backend: v.GetString("LOCK_BACKEND"),
			TTL:     v.GetDuration("LOCK_TTL"),
			Wait:    v.GetDuration("LOCK_WAIT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "salon-booking")
	v.SetDefault("BUSINESS_NAME", "Luxe Hair Studio")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIGRATE", true)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("EMAIL_ENABLED", false)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_FROM", "bookings@salon.local")

	v.SetDefault("BUSINESS_TIMEZONE", "UTC")
	v.SetDefault("SLOT_STEP_MINUTES", 30)
	v.SetDefault("CONFLICT_DURATION_MINUTES", 60)
	v.SetDefault("DEFAULT_SLOT_DURATION", 60)
	v.SetDefault("STORAGE_TIMEOUT", "5s")

	v.SetDefault("LOCK_BACKEND", "local")
	v.SetDefault("LOCK_TTL", "5s")
	v.SetDefault("LOCK_WAIT", "2s")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

func (c *Config) validate() error {
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("SLOT_STEP_MINUTES must be positive, got %d", c.Scheduling.SlotStepMinutes)
	}
	if c.Scheduling.ConflictDurationMinutes <= 0 {
		return fmt.Errorf("CONFLICT_DURATION_MINUTES must be positive, got %d", c.Scheduling.ConflictDurationMinutes)
	}
	if c.Scheduling.DefaultSlotDuration <= 0 {
		return fmt.Errorf("DEFAULT_SLOT_DURATION must be positive, got %d", c.Scheduling.DefaultSlotDuration)
	}
	if c.Scheduling.StorageTimeout <= 0 {
		return fmt.Errorf("STORAGE_TIMEOUT must be positive")
	}
	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE %q: %w", c.Scheduling.Timezone, err)
	}
	switch c.Lock.Backend {
	case "local", "redis":
	default:
		return fmt.Errorf("LOCK_BACKEND must be local or redis, got %q", c.Lock.Backend)
	}
	return nil
}

// viper returns a raw fs error when an explicitly named config file is missing.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
