package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	CORS     CORSConfig
	Redis    RedisConfig
	Analysis AnalysisConfig
	Jobs     JobsConfig
	Billing  BillingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
	MigrationsPath  string
}

// DSN is the keyword/value form consumed by pgxpool.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// URL is the postgres:// form consumed by golang-migrate.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type AnalysisConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type JobsConfig struct {
	Enabled          bool
	OverdueSpec      string
	AchievementsSpec string
}

type BillingConfig struct {
	InvoiceNetTermDays int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "contractor")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("DB_MIGRATIONS_PATH", "migrations")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "60s")

	v.SetDefault("ANALYSIS_ENABLED", false)
	v.SetDefault("ANALYSIS_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("ANALYSIS_API_KEY", "")
	v.SetDefault("ANALYSIS_MODEL", "gpt-4o-mini")
	v.SetDefault("ANALYSIS_TIMEOUT", "30s")

	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("JOBS_OVERDUE_SPEC", "@hourly")
	v.SetDefault("JOBS_ACHIEVEMENTS_SPEC", "@every 6h")

	v.SetDefault("BILLING_NET_TERM_DAYS", 30)

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), 30*time.Minute),
			Migrate:         v.GetBool("DB_MIGRATE"),
			MigrationsPath:  v.GetString("DB_MIGRATIONS_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      parseDuration(v.GetString("REDIS_TTL"), time.Minute),
		},
		Analysis: AnalysisConfig{
			Enabled: v.GetBool("ANALYSIS_ENABLED"),
			BaseURL: v.GetString("ANALYSIS_BASE_URL"),
			APIKey:  v.GetString("ANALYSIS_API_KEY"),
			Model:   v.GetString("ANALYSIS_MODEL"),
			Timeout: parseDuration(v.GetString("ANALYSIS_TIMEOUT"), 30*time.Second),
		},
		Jobs: JobsConfig{
			Enabled:          v.GetBool("JOBS_ENABLED"),
			OverdueSpec:      v.GetString("JOBS_OVERDUE_SPEC"),
			AchievementsSpec: v.GetString("JOBS_ACHIEVEMENTS_SPEC"),
		},
		Billing: BillingConfig{
			InvoiceNetTermDays: v.GetInt("BILLING_NET_TERM_DAYS"),
		},
	}

	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
