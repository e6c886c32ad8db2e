package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/midhunrajcharles/SyndicateIQ/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing events to the log.
// It is used when no Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a new log-backed event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event with its JSON payload.
func (p *LogPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.InfoContext(ctx, "domain event",
			slog.String("event_type", evt.EventType()),
			slog.String("event_id", evt.EventID().String()),
			slog.String("aggregate_id", evt.AggregateID()),
			slog.String("payload", string(payload)),
		)
	}
	return nil
}
