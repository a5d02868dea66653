package irp

import "os"

// DefaultBaseURL points at the NIC sandbox gateway. Production deployments
// override it through IRP_BASE_URL.
const DefaultBaseURL = "https://einv-apisandbox.nic.in"

// Config holds the IRP gateway credentials for a deployment
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// ConfigFromEnv reads the IRP gateway configuration from the environment
func ConfigFromEnv() Config {
	baseURL := os.Getenv("IRP_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL:      baseURL,
		ClientID:     os.Getenv("IRP_CLIENT_ID"),
		ClientSecret: os.Getenv("IRP_CLIENT_SECRET"),
		Username:     os.Getenv("IRP_USERNAME"),
		Password:     os.Getenv("IRP_PASSWORD"),
	}
}

// Configured reports whether all credentials required to reach the gateway
// are present
func (c Config) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.Username != "" && c.Password != ""
}
