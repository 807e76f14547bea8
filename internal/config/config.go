// Package config loads the workhub settings from defaults, an optional
// YAML file, an optional .env file and WORKHUB_* environment variables,
// in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"workhub/internal/util"
)

const (
	DriverSQLite  = "sqlite"
	DriverMongoDB = "mongodb"
)

// DefaultPaths are tried in order when no config file is named.
var DefaultPaths = []string{
	"workhub.yaml",
	"workhub.yml",
	filepath.Join("configs", "workhub.yaml"),
}

// Config holds every runtime setting.
type Config struct {
	Addr         string        `yaml:"addr"`
	StaticDir    string        `yaml:"static_dir"`
	LogLevel     string        `yaml:"log_level"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

// DatabaseConfig selects and configures the store engine.
type DatabaseConfig struct {
	Driver        string `yaml:"driver"` // "sqlite" | "mongodb"
	Path          string `yaml:"path"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
}

// AuthConfig configures the bearer token check.
type AuthConfig struct {
	// JWTSecret is the HS256 key; empty disables the check.
	JWTSecret string `yaml:"jwt_secret"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		StaticDir:    "web/dist",
		LogLevel:     "info",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		Database: DatabaseConfig{
			Driver:        DriverSQLite,
			Path:          "data/workhub.db",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "workhub",
		},
	}
}

// Load builds the configuration. An explicit path must exist; otherwise
// the first of DefaultPaths found is used, if any. A .env file in the
// working directory is loaded without overriding variables already set.
func Load(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.readFile(path); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	candidates := DefaultPaths
	if path != "" {
		candidates = []string{path}
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) && path == "" {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", p, err)
		}
		return nil
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Addr = util.EnvOrDefault("WORKHUB_ADDR", c.Addr)
	c.StaticDir = util.EnvOrDefault("WORKHUB_STATIC_DIR", c.StaticDir)
	c.LogLevel = util.EnvOrDefault("WORKHUB_LOG_LEVEL", c.LogLevel)
	c.ReadTimeout = util.EnvDuration("WORKHUB_READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = util.EnvDuration("WORKHUB_WRITE_TIMEOUT", c.WriteTimeout)

	c.Database.Driver = util.EnvOrDefault("WORKHUB_DB_DRIVER", c.Database.Driver)
	c.Database.Path = util.EnvOrDefault("WORKHUB_DB_PATH", c.Database.Path)
	c.Database.MongoURI = util.EnvOrDefault("WORKHUB_MONGO_URI", c.Database.MongoURI)
	c.Database.MongoDatabase = util.EnvOrDefault("WORKHUB_MONGO_DATABASE", c.Database.MongoDatabase)

	c.Auth.JWTSecret = util.EnvOrDefault("WORKHUB_JWT_SECRET", c.Auth.JWTSecret)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database.path is required for the sqlite driver")
		}
	case DriverMongoDB:
		if c.Database.MongoURI == "" || c.Database.MongoDatabase == "" {
			return errors.New("database.mongo_uri and database.mongo_database are required for the mongodb driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
