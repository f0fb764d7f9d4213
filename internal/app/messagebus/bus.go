package messagebus

import (
	"log/slog"

	"github.com/doucuty-cmd/ThaiGovDocs/internal/domain"
)

type EventHandler func(event domain.Event) error

// MessageBus dispatches domain events to registered handlers.
// Dispatch is synchronous and in registration order: field-change
// events must be processed strictly in the order they were produced,
// so the preview always reflects the last edit.
type MessageBus struct {
	logger   *slog.Logger
	handlers map[string][]EventHandler
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			if err := handler(event); err != nil {
				b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
			}
		}
	}
	return nil
}
