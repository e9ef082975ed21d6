// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/alertcord/alertcord/internal/adapters/config"
	_ "github.com/alertcord/alertcord/internal/adapters/discord"
	_ "github.com/alertcord/alertcord/internal/adapters/logger"
	_ "github.com/alertcord/alertcord/internal/adapters/shell"
	_ "github.com/alertcord/alertcord/internal/adapters/telemetry"
	_ "github.com/alertcord/alertcord/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/alertcord/alertcord/internal/app"
)
