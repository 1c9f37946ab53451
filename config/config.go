package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Guarantee GuaranteeConfig `mapstructure:"guarantee"`
	Interest  InterestConfig  `mapstructure:"interest"`
	Exchange  ExchangeConfig  `mapstructure:"exchange"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig locates the exchange-rate cache and rate-limit counters.
// When disabled the ledger runs on the static rate table without rate limiting.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// Timeout bounds dialing, each command and the startup ping.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AuthConfig lists back-office operators: operator id -> Argon2id password hash.
type AuthConfig struct {
	Operators map[string]string `mapstructure:"operators"`
}

// RateLimitConfig bounds requests per operator per window. Login attempts
// are counted per client IP. Zero disables a limit.
type RateLimitConfig struct {
	Requests      int           `mapstructure:"requests"`
	LoginRequests int           `mapstructure:"login_requests"`
	Window        time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// StorageConfig selects the persistence backend: "postgres" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

// LedgerConfig bounds the retry loop around each unit of work.
type LedgerConfig struct {
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

// GuaranteeConfig maps loan types to the fraction of the requested amount
// that must be blocked. Fractions are decimal strings ("0.15"). Viper lowercases
// map keys, so loan types are matched case-insensitively.
type GuaranteeConfig struct {
	DefaultPercent string            `mapstructure:"default_percent"`
	Percentages    map[string]string `mapstructure:"percentages"`
}

type InterestConfig struct {
	DefaultMonthlyPercent string `mapstructure:"default_monthly_percent"`
	ProcessingFeeRate     string `mapstructure:"processing_fee_rate"`
	ScheduleEnabled       bool   `mapstructure:"schedule_enabled"`
	ScheduleAt            string `mapstructure:"schedule_at"` // HH:MM, daily
}

// ExchangeConfig holds the static fallback rate table, keyed "FROM_TO".
type ExchangeConfig struct {
	Rates    map[string]string `mapstructure:"rates"`
	CacheTTL time.Duration     `mapstructure:"cache_ttl"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MFL_ (MicroFinance Ledger).
// Nested keys use underscore: MFL_DATABASE_HOST, MFL_STORAGE_DRIVER, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "microfinance_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.timeout", "2s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "microfinance-ledger")
	v.SetDefault("auth.operators", map[string]string{})
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.login_requests", 10)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("ledger.max_retries", 3)
	v.SetDefault("ledger.retry_backoff", "20ms")
	v.SetDefault("guarantee.default_percent", "0.15")
	v.SetDefault("guarantee.percentages", map[string]string{
		"Personal":   "0.15",
		"CreditAuto": "0.30",
		"CreditMoto": "0.30",
	})
	v.SetDefault("interest.default_monthly_percent", "3.5")
	v.SetDefault("interest.processing_fee_rate", "0.05")
	v.SetDefault("interest.schedule_enabled", false)
	v.SetDefault("interest.schedule_at", "00:30")
	v.SetDefault("exchange.rates", map[string]string{})
	v.SetDefault("exchange.cache_ttl", "1h")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// MFL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MFL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
