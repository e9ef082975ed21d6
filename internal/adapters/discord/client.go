// Package discord posts messages to Discord webhooks.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/zerr"

	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports"
)

const (
	httpClientTimeout = 30 * time.Second

	// maxRetryAfter caps how long a 429 Retry-After is honored before
	// giving up on the delivery.
	maxRetryAfter = 10 * time.Second

	// maxErrorBody limits how much of an error response is read back for
	// diagnostics.
	maxErrorBody = 512
)

// Client implements ports.Notifier against the Discord webhook API.
type Client struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient creates a new Client with a default timeout.
func NewClient(logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
		logger:     logger,
	}
}

// NewClientWithHTTP creates a Client with a custom http client (used for testing).
func NewClientWithHTTP(logger ports.Logger, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Send posts the message to the webhook URL. A single rate-limit response is
// retried after the advertised delay; any other non-success status fails the
// delivery.
func (c *Client) Send(ctx context.Context, webhookURL string, msg *domain.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDeliveryFailed.Error())
	}

	status, retryAfter, err := c.post(ctx, webhookURL, body)
	if err != nil {
		return err
	}

	if status == http.StatusTooManyRequests {
		c.logger.Warn("discord rate limit hit, retrying after " + retryAfter.String())

		select {
		case <-ctx.Done():
			return zerr.Wrap(ctx.Err(), domain.ErrRateLimited.Error())
		case <-time.After(retryAfter):
		}

		status, _, err = c.post(ctx, webhookURL, body)
		if err != nil {
			return err
		}
		if status == http.StatusTooManyRequests {
			return domain.ErrRateLimited
		}
	}

	if status < 200 || status > 299 {
		return zerr.With(domain.ErrDiscordStatus, "status", status)
	}

	return nil
}

// post sends one request and returns the response status. The retry delay is
// only meaningful for a 429 status.
func (c *Client) post(ctx context.Context, webhookURL string, body []byte) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrDeliveryFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrDeliveryFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain a bounded amount so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")), nil
}

// parseRetryAfter interprets the Retry-After header in seconds.
// Missing or malformed values fall back to one second.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return time.Second
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds <= 0 {
		return time.Second
	}

	delay := time.Duration(seconds * float64(time.Second))
	if delay > maxRetryAfter {
		return maxRetryAfter
	}
	return delay
}
