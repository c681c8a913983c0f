package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}
	if c.API.RetryBackoff < 0 {
		return errors.New("api.retry_backoff must be >= 0")
	}

	if err := c.OAuth.validate("oauth"); err != nil {
		return err
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func (o *OAuthConfig) validate(prefix string) error {
	if o.ConsumerKey == "" {
		return fmt.Errorf("%s.consumer_key is required", prefix)
	}
	if o.ConsumerSecret == "" {
		return fmt.Errorf("%s.consumer_secret is required", prefix)
	}
	if o.AccessToken == "" {
		return fmt.Errorf("%s.access_token is required", prefix)
	}
	if o.AccessTokenSecret == "" {
		return fmt.Errorf("%s.access_token_secret is required", prefix)
	}
	return nil
}

// ParseLevel converts a log.level value to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q is invalid (want debug, info, warn or error)", s)
	}
	return level, nil
}
