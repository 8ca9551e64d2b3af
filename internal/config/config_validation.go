package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultAppName        = "Account REST API Service"
	defaultAppVersion     = "1.0"
	defaultRequestTimeout = 30 * time.Second
)

// validate fills in defaults for optional fields and checks required
// ones. It is called by the builder after all sources are merged.
func (c *StructuredConfig) validate() error {
	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}
	if c.App.Version == "" {
		c.App.Version = defaultAppVersion
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	if c.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
