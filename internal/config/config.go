package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 8000
	defaultEnv        = "development"
	defaultJWTSecret  = "dev-secret-change"
	defaultTokenTTL   = 60
)

// AppConfig holds runtime startup configuration loaded from YAML,
// with environment variables taking precedence over file values.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	AdminSecret    string                `yaml:"admin_secret"`
	JWTSecret      string                `yaml:"jwt_secret"`
	TokenTTLMin    int                   `yaml:"token_ttl_minutes"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
}

// DatabaseRuntimeConfig points at the backing document store. Both
// URL and Name must be present for the store to be considered
// configured; the API degrades gracefully when they are absent.
type DatabaseRuntimeConfig struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

type rawAppConfig struct {
	Port               int      `yaml:"port"`
	Env                string   `yaml:"env"`
	NodeEnv            string   `yaml:"node_env"`
	Database           rawDB    `yaml:"database"`
	DatabaseURL        string   `yaml:"database_url"`
	DatabaseName       string   `yaml:"database_name"`
	RedisURL           string   `yaml:"redis_url"`
	AdminSecret        string   `yaml:"admin_secret"`
	JWTSecret          string   `yaml:"jwt_secret"`
	JWTSecretLegacy    string   `yaml:"jwtsecret"`
	TokenTTLMin        int      `yaml:"token_ttl_minutes"`
	AccessTokenExpire  int      `yaml:"access_token_expire"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type rawDB struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// Load reads the YAML config at path and applies environment
// overrides. A missing file is not an error: deployments driven
// purely by environment variables carry no config file at all.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if decodeErr := decoder.Decode(&raw); decodeErr != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, decodeErr)
		}
		applyRawAppConfig(&cfg, raw)
	case os.IsNotExist(err):
		// env-only deployment
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.TokenTTLMin < 1 {
		return nil, fmt.Errorf("invalid token_ttl_minutes %d, expected >= 1", cfg.TokenTTLMin)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:        defaultPort,
		Env:         defaultEnv,
		JWTSecret:   defaultJWTSecret,
		TokenTTLMin: defaultTokenTTL,
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.Database.URL); v != "" {
		cfg.Database.URL = v
	}
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		cfg.Database.URL = v
	}
	if v := strings.TrimSpace(raw.Database.Name); v != "" {
		cfg.Database.Name = v
	}
	if v := strings.TrimSpace(raw.DatabaseName); v != "" {
		cfg.Database.Name = v
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(raw.AdminSecret); v != "" {
		cfg.AdminSecret = v
	}
	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(raw.JWTSecretLegacy); v != "" {
		cfg.JWTSecret = v
	}
	if raw.TokenTTLMin != 0 {
		cfg.TokenTTLMin = raw.TokenTTLMin
	}
	if raw.AccessTokenExpire != 0 {
		cfg.TokenTTLMin = raw.AccessTokenExpire
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	cfg.Env = normalizeEnv(cfg.Env)
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.Database.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_NAME")); v != "" {
		cfg.Database.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_SECRET")); v != "" {
		cfg.AdminSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("ACCESS_TOKEN_EXPIRE")); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			cfg.TokenTTLMin = minutes
		}
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

// TokenTTL returns the access token lifetime.
func (c *AppConfig) TokenTTL() time.Duration {
	minutes := c.TokenTTLMin
	if minutes < 1 {
		minutes = defaultTokenTTL
	}
	return time.Duration(minutes) * time.Minute
}

// DatabaseConfigured reports whether both connection knobs are set.
func (c *AppConfig) DatabaseConfigured() bool {
	return c.Database.URL != "" && c.Database.Name != ""
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
