package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// DatabaseConfig holds SurrealDB connection settings.
type DatabaseConfig struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	Namespace string `yaml:"namespace"`
	Database  string `yaml:"database"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
}

// AuthConfig holds token signing and guard settings.
type AuthConfig struct {
	TokenSecret  string         `yaml:"token_secret"`
	Issuer       string         `yaml:"issuer"`
	TokenTTL     time.Duration  `yaml:"token_ttl"`
	VerifyTokens bool           `yaml:"verify_tokens"`
	RedirectURL  string         `yaml:"redirect_url"`
	Clients      []ClientConfig `yaml:"clients"`
}

// ClientConfig is one registered API client. SecretHash is a bcrypt hash.
type ClientConfig struct {
	ID         string `yaml:"id"`
	SecretHash string `yaml:"secret_hash"`
}

// RateLimitConfig holds request throttling settings.
type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

// Load reads configuration with sensible defaults, then an optional YAML
// file named by RELAY_CONFIG, then environment variables. Later sources
// win, so env vars override the file.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "relay",
			Database:  "main",
			User:      "root",
			Password:  "root",
		},
		Auth: AuthConfig{
			Issuer:       "relay.forgo.software",
			TokenTTL:     time.Hour,
			VerifyTokens: true,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 100,
			Burst:     20,
		},
	}

	if path := os.Getenv("RELAY_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Server.Port, "SERVER_PORT")
	setEnv(&cfg.Server.Env, "SERVER_ENV")
	setDurationEnv(&cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT")
	setDurationEnv(&cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT")
	setSliceEnv(&cfg.Server.AllowedOrigins, "CORS_ALLOWED_ORIGINS")

	setEnv(&cfg.Database.Host, "DB_HOST")
	setEnv(&cfg.Database.Port, "DB_PORT")
	setEnv(&cfg.Database.Namespace, "DB_NAMESPACE")
	setEnv(&cfg.Database.Database, "DB_DATABASE")
	setEnv(&cfg.Database.User, "DB_USER")
	setEnv(&cfg.Database.Password, "DB_PASSWORD")

	setEnv(&cfg.Auth.TokenSecret, "AUTH_TOKEN_SECRET")
	setEnv(&cfg.Auth.Issuer, "AUTH_ISSUER")
	setDurationEnv(&cfg.Auth.TokenTTL, "AUTH_TOKEN_TTL")
	setBoolEnv(&cfg.Auth.VerifyTokens, "AUTH_VERIFY_TOKENS")
	setEnv(&cfg.Auth.RedirectURL, "AUTH_REDIRECT_URL")
	if id := os.Getenv("AUTH_CLIENT_ID"); id != "" {
		cfg.Auth.Clients = append(cfg.Auth.Clients, ClientConfig{
			ID:         id,
			SecretHash: os.Getenv("AUTH_CLIENT_SECRET_HASH"),
		})
	}

	setIntEnv(&cfg.RateLimit.PerMinute, "RATE_LIMIT_PER_MINUTE")
	setIntEnv(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST")
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and
// valid. It returns an error describing all failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	if c.Auth.TokenSecret == "" {
		errs = append(errs, errors.New("AUTH_TOKEN_SECRET is required"))
	} else if c.IsProduction() && len(c.Auth.TokenSecret) < 32 {
		errs = append(errs, errors.New("AUTH_TOKEN_SECRET must be at least 32 bytes in production"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_TTL must be positive"))
	}
	for i, client := range c.Auth.Clients {
		if client.ID == "" {
			errs = append(errs, fmt.Errorf("auth client %d: id is required", i))
		}
		if !strings.HasPrefix(client.SecretHash, "$2") {
			errs = append(errs, fmt.Errorf("auth client %q: secret_hash must be a bcrypt hash", client.ID))
		}
	}

	if c.RateLimit.PerMinute <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be positive"))
	}
	if c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func setEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setIntEnv(dst *int, key string) {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			*dst = i
		}
	}
}

func setDurationEnv(dst *time.Duration, key string) {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			*dst = d
		}
	}
}

func setBoolEnv(dst *bool, key string) {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			*dst = b
		}
	}
}

func setSliceEnv(dst *[]string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = strings.Split(value, ",")
	}
}
