package eventpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// StatementGeneratedEvent is the event type of statement events.
const StatementGeneratedEvent = "statement.generated"

// Message is an encoded event ready for delivery.
type Message struct {
	Key       string
	EventType string
	Value     []byte
}

// Publisher defines the interface for publishing events to external systems.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// EventPublisher implements usecase.EventPublisher on top of a Publisher.
type EventPublisher struct {
	publisher Publisher
	logger    zerolog.Logger
	timeout   time.Duration
}

// Config for EventPublisher.
type Config struct {
	Publisher Publisher
	Logger    zerolog.Logger
	Timeout   time.Duration // Upper bound for one publish call
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(cfg Config) *EventPublisher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Publisher == nil {
		cfg.Publisher = NewLogPublisher(cfg.Logger)
	}

	return &EventPublisher{
		publisher: cfg.Publisher,
		logger:    cfg.Logger,
		timeout:   cfg.Timeout,
	}
}

// PublishStatement encodes and publishes a statement event keyed by account.
func (ep *EventPublisher) PublishStatement(ctx context.Context, event *domain.StatementEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal statement event: %w", err)
	}

	ep.logger.Debug().
		Str("event_id", event.ID).
		Str("event_type", StatementGeneratedEvent).
		Str("account_id", event.AccountID).
		Msg("publishing event")

	ctx, cancel := context.WithTimeout(ctx, ep.timeout)
	defer cancel()

	if err := ep.publisher.Publish(ctx, Message{
		Key:       event.AccountID,
		EventType: StatementGeneratedEvent,
		Value:     payload,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", event.ID, err)
	}

	ep.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", StatementGeneratedEvent).
		Msg("event published")

	return nil
}

// Close releases the underlying publisher.
func (ep *EventPublisher) Close() error {
	return ep.publisher.Close()
}

// LogPublisher is a simple publisher that logs events.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.Info().
		Str("event_type", msg.EventType).
		Str("key", msg.Key).
		RawJSON("payload", msg.Value).
		Msg("EVENT PUBLISHED")

	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
