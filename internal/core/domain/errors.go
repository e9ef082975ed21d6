package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidStatus is returned when a payload carries a status other than firing or resolved.
	ErrInvalidStatus = zerr.New("invalid alert status, expected 'firing' or 'resolved'")

	// ErrInvalidPayload is returned when a webhook payload cannot be decoded.
	ErrInvalidPayload = zerr.New("failed to decode webhook payload")

	// ErrWebhookNotConfigured is returned when no Discord webhook URL is configured.
	ErrWebhookNotConfigured = zerr.New("discord webhook URL not configured")

	// ErrInvalidWebhookURL is returned when the configured webhook URL is not an http(s) URL.
	ErrInvalidWebhookURL = zerr.New("invalid discord webhook URL")

	// ErrDeliveryFailed is returned when posting a message to Discord fails.
	ErrDeliveryFailed = zerr.New("failed to deliver discord message")

	// ErrDiscordStatus is returned when Discord answers with a non-success status code.
	ErrDiscordStatus = zerr.New("discord webhook returned non-success status")

	// ErrRateLimited is returned when Discord rate-limits the webhook and the retry fails too.
	ErrRateLimited = zerr.New("discord webhook rate limited")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidListenAddr is returned when the configured listen address is malformed.
	ErrInvalidListenAddr = zerr.New("invalid listen address")

	// ErrInvalidToolchain is returned when a toolchain target has no command configured.
	ErrInvalidToolchain = zerr.New("invalid toolchain, tool and arguments must not be empty")

	// ErrUnknownTarget is returned when a dispatch target is not build, release, or run.
	ErrUnknownTarget = zerr.New("unknown dispatch target")

	// ErrDispatchFailed is returned when a delegated build tool invocation fails.
	// It maps to exit code 1 without additional logging, the tool's own
	// output already tells the story.
	ErrDispatchFailed = zerr.New("dispatch execution failed")

	// ErrCleanFailed is returned when removing the build output directory fails.
	ErrCleanFailed = zerr.New("failed to remove build output directory")

	// ErrServerFailed is returned when the ingest server terminates abnormally.
	ErrServerFailed = zerr.New("ingest server failed")
)

// DispatchExit carries the exit status of a delegated build tool invocation.
// The CLI propagates Code as its own exit code.
type DispatchExit struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *DispatchExit) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying execution error.
func (e *DispatchExit) Unwrap() error {
	return e.Err
}
