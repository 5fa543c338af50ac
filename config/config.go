package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Log         LogConfig         `mapstructure:"log"`
	Rates       RatesConfig       `mapstructure:"rates"`
	Idempotency IdempotencyConfig `mapstructure:"idempotency"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout"` // applied per transaction, 0 = server default
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures validation of bearer tokens issued by the identity service.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Rate sources.
const (
	RateSourceStatic = "static"
	RateSourceLive   = "live"
)

type RatesConfig struct {
	Source            string            `mapstructure:"source"`
	Base              string            `mapstructure:"base"`
	Table             map[string]string `mapstructure:"table"` // units of currency per 1 base
	LiveURL           string            `mapstructure:"live_url"`
	Timeout           time.Duration     `mapstructure:"timeout"`
	RequestsPerSecond float64           `mapstructure:"requests_per_second"`
	CacheTTL          time.Duration     `mapstructure:"cache_ttl"`
}

// ParsedTable returns the static table with upper-cased codes and decimal values.
// Viper lower-cases map keys, so codes are normalised here.
func (r RatesConfig) ParsedTable() (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(r.Table))
	for code, raw := range r.Table {
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("rate for %s: %w", code, err)
		}
		if !d.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive", code)
		}
		out[strings.ToUpper(strings.TrimSpace(code))] = d
	}
	return out, nil
}

type IdempotencyConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// DefaultRateTable is the reference table, base VND.
func DefaultRateTable() map[string]string {
	return map[string]string{
		"VND": "1",
		"USD": "0.000041",
		"EUR": "0.000038",
		"JPY": "0.0063",
		"GBP": "0.000032",
		"CNY": "0.00030",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WLG_.
// Nested keys use underscore: WLG_DATABASE_HOST, WLG_RATES_SOURCE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.lock_timeout", "5s")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("rates.source", RateSourceStatic)
	v.SetDefault("rates.base", "VND")
	v.SetDefault("rates.table", DefaultRateTable())
	v.SetDefault("rates.live_url", "")
	v.SetDefault("rates.timeout", "5s")
	v.SetDefault("rates.requests_per_second", 1.0)
	v.SetDefault("rates.cache_ttl", "10m")
	v.SetDefault("idempotency.ttl", "24h")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// WLG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WLG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env vars alone are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	switch c.Rates.Source {
	case RateSourceStatic:
	case RateSourceLive:
		if c.Rates.LiveURL == "" {
			return fmt.Errorf("rates.live_url is required for the live rate source")
		}
	default:
		return fmt.Errorf("unknown rate source %q", c.Rates.Source)
	}
	c.Rates.Base = strings.ToUpper(strings.TrimSpace(c.Rates.Base))
	return nil
}
