package config

import "time"

// Config is the root configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	OAuth OAuthConfig `yaml:"oauth"`
	Log   LogConfig   `yaml:"log"`
}

// APIConfig holds Upwork API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	EntryPoint   string        `yaml:"entry_point"` // path segment after base_url, e.g. "api"
	Format       string        `yaml:"format"`      // response format suffix
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// OAuthConfig holds OAuth 1.0a consumer and access token credentials.
type OAuthConfig struct {
	ConsumerKey       string `yaml:"consumer_key"`
	ConsumerSecret    string `yaml:"consumer_secret"`
	AccessToken       string `yaml:"access_token"`
	AccessTokenSecret string `yaml:"access_token_secret"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
