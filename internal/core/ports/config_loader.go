package ports

import "github.com/alertcord/alertcord/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	//
	// It walks up from cwd looking for alertcord.yaml and falls back to
	// defaults when no file exists. The DISCORD_WEBHOOK_URL environment
	// variable overrides the file's webhook URL.
	Load(cwd string) (*domain.Config, error)

	// DiscoverPath walks up from cwd and returns the path of the config
	// file in use, or "" when none exists.
	DiscoverPath(cwd string) string
}
