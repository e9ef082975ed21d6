package app

import (
	"github.com/alertcord/alertcord/internal/adapters/ingest"
	"github.com/alertcord/alertcord/internal/core/ports"
	"github.com/alertcord/alertcord/internal/engine/relay"
)

// NewForwarder exposes the forward path for tests.
func (a *App) NewForwarder(tracer ports.Tracer, webhookURL string, suppressor *relay.Suppressor) ingest.ForwardFunc {
	return a.forwarder(tracer, &serveState{
		webhookURL: webhookURL,
		suppressor: suppressor,
	})
}
