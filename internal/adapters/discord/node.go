package discord

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/alertcord/alertcord/internal/adapters/logger"
	"github.com/alertcord/alertcord/internal/core/ports"
)

// NodeID is the unique identifier for the Discord notifier Graft node.
const NodeID graft.ID = "adapter.notifier"

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})
}
