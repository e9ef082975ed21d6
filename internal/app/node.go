package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/alertcord/alertcord/internal/adapters/config"
	"github.com/alertcord/alertcord/internal/adapters/discord"
	"github.com/alertcord/alertcord/internal/adapters/logger"
	"github.com/alertcord/alertcord/internal/adapters/shell"
	"github.com/alertcord/alertcord/internal/adapters/telemetry"
	"github.com/alertcord/alertcord/internal/adapters/watcher"
	"github.com/alertcord/alertcord/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the wired application objects handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			discord.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			application := New(loader, executor, notifier, log).
				WithTracer(tracer).
				WithWatcher(fileWatcher)

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
