// Package config loads server settings from a YAML file with environment
// overrides. The file is optional; every setting has a usable default for
// local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config.yaml"

// Config holds all server settings.
type Config struct {
	Port        int    `yaml:"port"`
	LogLevel    string `yaml:"logLevel"`
	DatabaseURL string `yaml:"databaseURL"`

	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterizes the photo storage backend.
type StorageConfig struct {
	Type string `yaml:"type"` // "local" or "s3"

	LocalPath    string `yaml:"localPath"`
	LocalBaseURL string `yaml:"localBaseURL"`

	S3Endpoint      string `yaml:"s3Endpoint"`
	S3Bucket        string `yaml:"s3Bucket"`
	S3Region        string `yaml:"s3Region"`
	S3AccessKey     string `yaml:"s3AccessKey"`
	S3SecretKey     string `yaml:"s3SecretKey"`
	S3UseSSL        bool   `yaml:"s3UseSSL"`
	S3PublicBaseURL string `yaml:"s3PublicBaseURL"`
}

// Load reads config from path (defaults to config.yaml), applies environment
// overrides, and fills defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = strings.TrimSpace(v)
	}
	if v := os.Getenv("LOCAL_STORAGE_PATH"); v != "" {
		cfg.Storage.LocalPath = strings.TrimSpace(v)
	}
	if v := os.Getenv("LOCAL_STORAGE_BASE_URL"); v != "" {
		cfg.Storage.LocalBaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.Storage.S3Endpoint = strings.TrimSpace(v)
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.Storage.S3Bucket = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Storage.S3Region = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		cfg.Storage.S3AccessKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.Storage.S3SecretKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("S3_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Storage.S3UseSSL = b
		}
	}
	if v := os.Getenv("S3_PUBLIC_BASE_URL"); v != "" {
		cfg.Storage.S3PublicBaseURL = strings.TrimSpace(v)
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = "sqlite:./miniature_tracker.db"
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.LocalPath == "" {
		c.Storage.LocalPath = "./uploads"
	}
	if c.Storage.LocalBaseURL == "" {
		c.Storage.LocalBaseURL = fmt.Sprintf("http://localhost:%d/uploads", c.Port)
	}
	if c.Storage.S3Region == "" {
		c.Storage.S3Region = "us-east-1"
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Storage.Type {
	case "local":
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("s3 storage requires a bucket")
		}
		if c.Storage.S3Endpoint == "" {
			return fmt.Errorf("s3 storage requires an endpoint")
		}
	default:
		return fmt.Errorf("unsupported storage type %q", c.Storage.Type)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
