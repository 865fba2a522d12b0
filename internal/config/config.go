// Package config implements TOML configuration loading and the override
// chain for spfetch: defaults -> config file -> environment variables ->
// CLI flags. CLI flags always win, matching user expectations for one-off
// overrides without editing the config file.
package config

// Config is the top-level configuration structure parsed from a TOML file.
type Config struct {
	Auth    AuthConfig    `toml:"auth"`
	Logging LoggingConfig `toml:"logging"`
	Network NetworkConfig `toml:"network"`
}

// AuthConfig holds the application registration and site coordinates.
// All five values are required; the config file is one place to put them,
// environment variables are another (secrets usually arrive via the
// environment from a secret store).
type AuthConfig struct {
	TenantID        string `toml:"tenant_id"`
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret"`
	CompanyTenantID string `toml:"company_tenant_id"`
	SiteName        string `toml:"site_name"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NetworkConfig controls the HTTP transport.
type NetworkConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default values.
const (
	defaultLogLevel       = "info"
	defaultTimeoutSeconds = 30
)

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
		Network: NetworkConfig{TimeoutSeconds: defaultTimeoutSeconds},
	}
}
