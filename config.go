package tapsilat

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint
	DefaultBaseURL = "https://panel.tapsilat.dev/api/v1"
	// DefaultTimeout is applied to every request unless overridden
	DefaultTimeout = 30 * time.Second
)

// Config holds client configuration. Build it once, pass it to NewClient;
// the client never mutates it afterward.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout is applied uniformly to every request.
	Timeout time.Duration
	// WebhookSecret signs inbound webhook notifications. Only needed by
	// applications that verify webhooks through the client.
	WebhookSecret string
	// StrictTotals enables the opt-in cross-check that an order's amount
	// equals the sum of its basket item price*quantity.
	StrictTotals bool
}

// NewConfig creates a configuration with the given API key and defaults for
// everything else.
func NewConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL sets a custom base URL
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets a custom request timeout
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// WithWebhookSecret sets the secret used to verify inbound webhooks
func (c Config) WithWebhookSecret(secret string) Config {
	c.WebhookSecret = secret
	return c
}

// WithStrictTotals enables order amount vs basket total validation
func (c Config) WithStrictTotals() Config {
	c.StrictTotals = true
	return c
}

// Validate checks that required fields are present
func (c Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Message: "API key cannot be empty"}
	}
	if c.BaseURL == "" {
		return &ConfigError{Message: "base URL cannot be empty"}
	}
	return nil
}

// ConfigFromEnv builds a configuration from TAPSILAT_API_KEY,
// TAPSILAT_BASE_URL, TAPSILAT_WEBHOOK_SECRET and TAPSILAT_TIMEOUT_SECONDS.
// Unset variables fall back to defaults; validation still happens in
// NewClient.
func ConfigFromEnv() Config {
	config := NewConfig(os.Getenv("TAPSILAT_API_KEY"))
	if baseURL := os.Getenv("TAPSILAT_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	config.WebhookSecret = os.Getenv("TAPSILAT_WEBHOOK_SECRET")
	if timeoutStr := os.Getenv("TAPSILAT_TIMEOUT_SECONDS"); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil && seconds > 0 {
			config.Timeout = time.Duration(seconds) * time.Second
		}
	}
	return config
}
