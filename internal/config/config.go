package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers
const (
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds everything the API process needs at startup
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Server    ServerConfig    `yaml:"server"`
	Demo      DemoConfig      `yaml:"demo"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// StoreConfig holds document store connection parameters
type StoreConfig struct {
	Driver   string `yaml:"driver"`
	MongoURL string `yaml:"mongo_url"`
	RedisURL string `yaml:"redis_url"`
	DBName   string `yaml:"db_name"`
}

type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func (s ServerConfig) Addr() string { return s.Host + ":" + s.Port }

type DemoConfig struct {
	ResetCron string `yaml:"reset_cron"` // empty disables the periodic reset
}

type DashboardConfig struct {
	StreamInterval time.Duration `yaml:"stream_interval"`
}

// Load builds the configuration from, in increasing precedence: the YAML file
// named by CONFIG_FILE, a .env file in the working directory, and the process
// environment. A missing connection string or database name is an error.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Store: StoreConfig{Driver: DriverMongo},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        "8001",
			CORSOrigins: []string{"*"},
		},
		Dashboard: DashboardConfig{StreamInterval: 5 * time.Second},
	}
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	log.Printf("[Config] Loaded %s", path)
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Store.Driver = getEnv("STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.MongoURL = getEnv("MONGO_URL", cfg.Store.MongoURL)
	cfg.Store.RedisURL = getEnv("REDIS_URL", cfg.Store.RedisURL)
	cfg.Store.DBName = getEnv("DB_NAME", cfg.Store.DBName)
	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Demo.ResetCron = getEnv("DEMO_RESET_CRON", cfg.Demo.ResetCron)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}

	if v := os.Getenv("STATS_STREAM_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("STATS_STREAM_INTERVAL: %w", err)
		}
		cfg.Dashboard.StreamInterval = d
	}
	return nil
}

// Validate checks the settings the process cannot start without
func (c *Config) Validate() error {
	if c.Store.DBName == "" {
		return errors.New("DB_NAME must be set")
	}
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.MongoURL == "" {
			return errors.New("MONGO_URL must be set")
		}
	case DriverRedis:
		if c.Store.RedisURL == "" {
			return errors.New("REDIS_URL must be set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Dashboard.StreamInterval <= 0 {
		return errors.New("stats stream interval must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
