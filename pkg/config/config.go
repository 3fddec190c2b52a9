package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendDuckDB   = "duckdb"
	BackendPostgres = "postgres"
)

type Config struct {
	ServerHost string `mapstructure:"server_host"`
	ServerPort string `mapstructure:"server_port"`

	StorageBackend string `mapstructure:"storage_backend"`
	DuckDBPath     string `mapstructure:"duckdb_path"`
	PostgresDSN    string `mapstructure:"postgres_dsn"`

	MapboxToken     string        `mapstructure:"mapbox_token"`
	MapboxTimeout   time.Duration `mapstructure:"mapbox_timeout"`
	MapboxCacheSize int           `mapstructure:"mapbox_cache_size"`
}

// Load reads configuration from an optional YAML file plus POTHUHOLE_*
// environment variables, applying defaults where unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("storage_backend", BackendDuckDB)
	v.SetDefault("duckdb_path", "pothuhole.db")
	// Empty defaults keep the keys visible to AutomaticEnv during Unmarshal.
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("mapbox_token", "")
	v.SetDefault("mapbox_timeout", "5s")
	v.SetDefault("mapbox_cache_size", 1000)

	v.SetEnvPrefix("POTHUHOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.StorageBackend {
	case BackendDuckDB:
		if cfg.DuckDBPath == "" {
			return nil, fmt.Errorf("duckdb_path is required for the duckdb backend")
		}
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres_dsn is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if cfg.MapboxTimeout <= 0 {
		return nil, fmt.Errorf("mapbox_timeout must be positive")
	}
	if cfg.MapboxCacheSize <= 0 {
		return nil, fmt.Errorf("mapbox_cache_size must be positive")
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}
