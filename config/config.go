package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Market   MarketConfig   `mapstructure:"market"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
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

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
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

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// MarketConfig describes the local node and the market defaults it trades with.
type MarketConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"`
	ProtocolVersion int    `mapstructure:"protocol_version"`
	HostSuffix      string `mapstructure:"host_suffix"` // stripped before ban/ignore comparisons
	NodeHost        string `mapstructure:"node_host"`
	NodePort        int    `mapstructure:"node_port"`
}

// SyncConfig holds the refresh intervals of the background jobs.
type SyncConfig struct {
	OfferInterval       time.Duration `mapstructure:"offer_interval"`
	FilterInterval      time.Duration `mapstructure:"filter_interval"`
	ClosedTradeInterval time.Duration `mapstructure:"closed_trade_interval"`
	PreferenceFlush     time.Duration `mapstructure:"preference_flush"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: OFB_ (Offer Book).
// Nested keys use underscore: OFB_DATABASE_HOST, OFB_MARKET_DEFAULT_CURRENCY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "offerbook")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "p2p-offerbook")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("market.default_currency", "EUR")
	v.SetDefault("market.protocol_version", 1)
	v.SetDefault("market.host_suffix", ".onion")
	v.SetDefault("market.node_host", "localhost")
	v.SetDefault("market.node_port", 9999)
	v.SetDefault("sync.offer_interval", "5s")
	v.SetDefault("sync.filter_interval", "1m")
	v.SetDefault("sync.closed_trade_interval", "1m")
	v.SetDefault("sync.preference_flush", "2s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: OFB_DATABASE_HOST -> database.host
	v.SetEnvPrefix("OFB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Market.DefaultCurrency = strings.ToUpper(strings.TrimSpace(cfg.Market.DefaultCurrency))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the node cannot run with. The JWT secret is
// checked by the commands that need it.
func (c *Config) Validate() error {
	var problems []string
	if c.Market.DefaultCurrency == "" {
		problems = append(problems, "market.default_currency is empty")
	}
	if c.Market.ProtocolVersion <= 0 {
		problems = append(problems, "market.protocol_version must be positive")
	}
	if c.Market.NodeHost == "" {
		problems = append(problems, "market.node_host is empty")
	}
	if c.Market.NodePort <= 0 || c.Market.NodePort > 65535 {
		problems = append(problems, fmt.Sprintf("market.node_port %d out of range", c.Market.NodePort))
	}
	for key, d := range map[string]time.Duration{
		"sync.offer_interval":        c.Sync.OfferInterval,
		"sync.filter_interval":       c.Sync.FilterInterval,
		"sync.closed_trade_interval": c.Sync.ClosedTradeInterval,
		"sync.preference_flush":      c.Sync.PreferenceFlush,
	} {
		if d <= 0 {
			problems = append(problems, key+" must be positive")
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}
