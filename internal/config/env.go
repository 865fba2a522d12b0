package config

import "os"

// Environment variable names. The credential names are fixed by the secret
// store conventions of the pipelines this tool serves.
const (
	EnvCompanyTenantID = "COMPANY_TENANT_ID"
	EnvClientID        = "CLIENT_ID"
	EnvClientSecret    = "CLIENT_SECRET"
	EnvTenantID        = "TENANT_ID"
	EnvSiteName        = "SITE_NAME"
	EnvConfig          = "SPFETCH_CONFIG"
)

// EnvOverrides holds values derived from environment variables.
type EnvOverrides struct {
	CompanyTenantID string
	ClientID        string
	ClientSecret    string
	TenantID        string
	SiteName        string
	ConfigPath      string
}

// ReadEnvOverrides reads environment variables and returns any overrides
// found. This does not modify the Config; Resolve applies the fields.
func ReadEnvOverrides() EnvOverrides {
	return EnvOverrides{
		CompanyTenantID: os.Getenv(EnvCompanyTenantID),
		ClientID:        os.Getenv(EnvClientID),
		ClientSecret:    os.Getenv(EnvClientSecret),
		TenantID:        os.Getenv(EnvTenantID),
		SiteName:        os.Getenv(EnvSiteName),
		ConfigPath:      os.Getenv(EnvConfig),
	}
}
