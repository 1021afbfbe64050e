package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration. Every key can be overridden from the
// environment with dots replaced by underscores (db.host -> DB_HOST).
type Config struct {
	GRPCAddr string      `mapstructure:"grpc_addr"`
	HTTPAddr string      `mapstructure:"http_addr"`
	APIToken string      `mapstructure:"api_token"`
	Log      LogConfig   `mapstructure:"log"`
	DB       DBConfig    `mapstructure:"db"`
	Redis    RedisConfig `mapstructure:"redis"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
	Output      string `mapstructure:"output"` // stdout, stderr or a file path
}

type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	ConnStr  string `mapstructure:"conn_str"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// ConnectionString returns ConnStr when set, otherwise builds one from the individual fields.
func (c DBConfig) ConnectionString() string {
	if c.ConnStr != "" {
		return c.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	// Addr selects the redis ledger store; empty keeps ledgers in memory.
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	LedgerTTL time.Duration `mapstructure:"ledger_ttl"`
}

// Load reads the YAML file at path (optional) and applies environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grpc_addr", ":8080")
	v.SetDefault("http_addr", ":8081")
	v.SetDefault("api_token", "dev-token")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.development", false)
	v.SetDefault("log.output", "stdout")
	v.SetDefault("db.enabled", true)
	v.SetDefault("db.conn_str", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "lifeplan")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ledger_ttl", "24h")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}
