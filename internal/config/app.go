package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig represents the service configuration.
type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Cache   CacheConfig   `mapstructure:"cache"   yaml:"cache"`
	Batch   BatchConfig   `mapstructure:"batch"   yaml:"batch"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Address         string        `mapstructure:"address"          yaml:"address"`
	CORSOrigins     []string      `mapstructure:"cors_origins"     yaml:"cors_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend       string        `mapstructure:"backend"        yaml:"backend"` // "memory", "redis" or "none"
	RedisAddr     string        `mapstructure:"redis_addr"     yaml:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"       yaml:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"            yaml:"ttl"`
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"       yaml:"level"`  // "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"      yaml:"format"` // "json" or "console"
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`
}

// LoadAppConfig reads the configuration from path, if given, and environment
// variables. Environment variables override file values.
// Format: FINCALC_<SECTION>_<KEY>, e.g., FINCALC_CACHE_REDIS_ADDR
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FINCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultAppConfig returns the built-in defaults without reading files or
// the environment.
func DefaultAppConfig() *AppConfig {
	v := viper.New()
	setDefaults(v)
	var cfg AppConfig
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Cache defaults
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", time.Hour)

	// Batch defaults
	v.SetDefault("batch.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks enumerated and numeric settings.
func (c *AppConfig) Validate() error {
	switch c.Cache.Backend {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("cache backend must be memory, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache redis_addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative")
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch concurrency cannot be negative")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}
