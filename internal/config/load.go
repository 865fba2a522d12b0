package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// CLIOverrides holds values from command-line flags, the highest-priority
// layer of the override chain.
type CLIOverrides struct {
	ConfigPath string
	SiteName   string
}

// Resolved is the effective configuration after the full override chain.
// The five credential values are guaranteed non-empty.
type Resolved struct {
	TenantID        string
	ClientID        string
	ClientSecret    string
	CompanyTenantID string
	SiteName        string
	LogLevel        string
	Timeout         time.Duration
}

// Load reads and parses a TOML config file and returns the resulting Config
// on top of defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault reads a TOML config file if it exists, otherwise returns a
// Config populated with all default values. Credentials can arrive entirely
// via the environment, so a missing file is not an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Resolve applies the override chain (defaults -> config file -> environment
// -> CLI flags) and validates that every required credential value is set.
// Missing required values are fatal here, before any network call is made.
func Resolve(env EnvOverrides, cli CLIOverrides) (*Resolved, error) {
	cfgPath := DefaultConfigPath()
	if env.ConfigPath != "" {
		cfgPath = env.ConfigPath
	}

	if cli.ConfigPath != "" {
		cfgPath = cli.ConfigPath
	}

	cfg, err := LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		TenantID:        cfg.Auth.TenantID,
		ClientID:        cfg.Auth.ClientID,
		ClientSecret:    cfg.Auth.ClientSecret,
		CompanyTenantID: cfg.Auth.CompanyTenantID,
		SiteName:        cfg.Auth.SiteName,
		LogLevel:        cfg.Logging.Level,
		Timeout:         time.Duration(cfg.Network.TimeoutSeconds) * time.Second,
	}

	applyEnv(r, env)

	if cli.SiteName != "" {
		r.SiteName = cli.SiteName
	}

	if missing := r.missingRequired(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s (set via config file or environment)",
			strings.Join(missing, ", "))
	}

	return r, nil
}

func applyEnv(r *Resolved, env EnvOverrides) {
	if env.TenantID != "" {
		r.TenantID = env.TenantID
	}

	if env.ClientID != "" {
		r.ClientID = env.ClientID
	}

	if env.ClientSecret != "" {
		r.ClientSecret = env.ClientSecret
	}

	if env.CompanyTenantID != "" {
		r.CompanyTenantID = env.CompanyTenantID
	}

	if env.SiteName != "" {
		r.SiteName = env.SiteName
	}
}

// missingRequired returns the environment-variable names of unset required
// values, in a stable order for error messages.
func (r *Resolved) missingRequired() []string {
	var missing []string

	if r.TenantID == "" {
		missing = append(missing, EnvTenantID)
	}

	if r.ClientID == "" {
		missing = append(missing, EnvClientID)
	}

	if r.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}

	if r.CompanyTenantID == "" {
		missing = append(missing, EnvCompanyTenantID)
	}

	if r.SiteName == "" {
		missing = append(missing, EnvSiteName)
	}

	return missing
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (r *Resolved) SlogLevel() slog.Level {
	switch r.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
