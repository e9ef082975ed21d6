package ports

import (
	"context"

	"github.com/alertcord/alertcord/internal/core/domain"
)

// Notifier defines the interface for delivering messages to a chat service.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Send posts the message to the given webhook URL.
	//
	// It returns an error when the request cannot be built or sent, or when
	// the service answers with a non-success status.
	Send(ctx context.Context, webhookURL string, msg *domain.Message) error
}
