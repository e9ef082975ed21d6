package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "alertcord.yaml"

	// DefaultListenAddr is the address the ingest server binds to by default.
	DefaultListenAddr = "[::]:9094"

	// DefaultSuppressionWindow is the default duplicate-delivery suppression window.
	DefaultSuppressionWindow = 2 * time.Minute

	// EnvWebhookURL is the environment variable that overrides the webhook URL.
	EnvWebhookURL = "DISCORD_WEBHOOK_URL"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
