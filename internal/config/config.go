package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Cache    CacheConfig
	Worker   WorkerConfig
	Metrics  MetricsConfig
	Locale   LocaleConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// CacheConfig holds caching TTL configuration
type CacheConfig struct {
	EntityTTL time.Duration
}

// WorkerConfig holds cache refresh worker configuration
type WorkerConfig struct {
	DebounceWindow time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Namespace string
}

// LocaleConfig holds the language used for user-facing messages
type LocaleConfig struct {
	Default string
}

var defaults = map[string]any{
	"ENV":                     "development",
	"SERVER_PORT":             "8080",
	"SERVER_READ_TIMEOUT":     "10s",
	"SERVER_WRITE_TIMEOUT":    "10s",
	"SERVER_SHUTDOWN_TIMEOUT": "30s",
	"CORS_ALLOWED_ORIGINS":    "http://localhost:3000,http://localhost:8080",

	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "postgres",
	"DB_NAME":              "tournament",
	"DB_SSLMODE":           "disable",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "5m",
	"DB_RUN_MIGRATIONS":    true,

	"REDIS_HOST":     "localhost",
	"REDIS_PORT":     "6379",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"NATS_URL": "nats://localhost:4222",

	"CACHE_TTL_ENTITY": "600s",

	"WORKER_DEBOUNCE_WINDOW": "1s",
	"WORKER_MAX_RETRIES":     3,
	"WORKER_INITIAL_BACKOFF": "100ms",

	"METRICS_NAMESPACE": "tournament",
	"LOCALE_DEFAULT":    "en",
}

// reader collects every invalid setting instead of stopping at the first
type reader struct {
	errs []error
}

func (r *reader) duration(key string) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return d
}

func (r *reader) positiveInt(key string) int {
	n := viper.GetInt(key)
	if n < 1 {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: must be at least 1, got %d", key, n))
	}
	return n
}

func (r *reader) list(key string) []string {
	items := strings.Split(viper.GetString(key), ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	r := &reader{}
	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     r.duration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    r.duration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: r.duration("SERVER_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  r.list("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetString("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxOpenConns:    r.positiveInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: r.duration("DB_CONN_MAX_LIFETIME"),
			RunMigrations:   viper.GetBool("DB_RUN_MIGRATIONS"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL: viper.GetString("NATS_URL"),
		},
		Cache: CacheConfig{
			EntityTTL: r.duration("CACHE_TTL_ENTITY"),
		},
		Worker: WorkerConfig{
			DebounceWindow: r.duration("WORKER_DEBOUNCE_WINDOW"),
			MaxRetries:     r.positiveInt("WORKER_MAX_RETRIES"),
			InitialBackoff: r.duration("WORKER_INITIAL_BACKOFF"),
		},
		Metrics: MetricsConfig{
			Namespace: viper.GetString("METRICS_NAMESPACE"),
		},
		Locale: LocaleConfig{
			Default: viper.GetString("LOCALE_DEFAULT"),
		},
	}

	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return config, nil
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
