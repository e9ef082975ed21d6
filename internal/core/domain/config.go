package domain

import (
	"net/url"
	"time"

	"go.trai.ch/zerr"
)

// Config is the resolved runtime configuration for the relay and dispatcher.
type Config struct {
	// Listen is the address the ingest server binds to.
	Listen string

	// WebhookURL is the Discord webhook endpoint messages are posted to.
	WebhookURL string

	// SuppressionWindow is how long an identical alert group is suppressed
	// after a successful delivery. Zero disables suppression.
	SuppressionWindow time.Duration

	// Toolchain configures the build dispatcher.
	Toolchain Toolchain
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Listen:            DefaultListenAddr,
		SuppressionWindow: DefaultSuppressionWindow,
		Toolchain:         DefaultToolchain(),
	}
}

// ValidateWebhookURL checks that the webhook URL is present and is an
// absolute http(s) URL.
func (c Config) ValidateWebhookURL() error {
	if c.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return zerr.Wrap(err, ErrInvalidWebhookURL.Error())
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(ErrInvalidWebhookURL, "url", c.WebhookURL)
	}

	return nil
}
