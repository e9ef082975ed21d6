package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/alertcord/alertcord/internal/adapters/logger"
	"github.com/alertcord/alertcord/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

// ServiceName is the instrumentation name reported on every span.
const ServiceName = "alertcord"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(ServiceName, log), nil
		},
	})
}
