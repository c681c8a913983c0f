package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://www.upwork.com"
	DefaultEntryPoint   = "api"
	DefaultFormat       = "json"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second
	DefaultLogLevel     = "info"
)

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.EntryPoint == "" {
		c.API.EntryPoint = DefaultEntryPoint
	}
	if c.API.Format == "" {
		c.API.Format = DefaultFormat
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
