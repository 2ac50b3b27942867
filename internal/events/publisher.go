package events

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

import (
	"context"
	"sync"
	"time"

	"giveaway-server/internal/clients/kafka"
	"giveaway-server/internal/observability"

	"github.com/google/uuid"
)

// TypeEntryCreated is published once per accepted entry.
const TypeEntryCreated = "entry.created"

const defaultPublishTimeout = 5 * time.Second

// EventProducer writes a single event to the broker
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher hands domain events to Kafka without blocking the caller
type Publisher struct {
	producer EventProducer
	timeout  time.Duration
	logger   *observability.Logger
	now      func() time.Time
	inflight sync.WaitGroup
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		timeout:  defaultPublishTimeout,
		logger:   logger,
		now:      time.Now,
	}
}

// DispatchEntryCreated publishes entry.created on its own goroutine. The publish
// outlives the request context but is bounded by the publisher timeout; failures
// are logged and never reach the entrant.
func (p *Publisher) DispatchEntryCreated(ctx context.Context, campaignID, entryID uuid.UUID) {
	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       TypeEntryCreated,
		CampaignID: campaignID.String(),
		Data: map[string]interface{}{
			"entry_id": entryID.String(),
		},
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	ctx = context.WithoutCancel(ctx)
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()

		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		if err := p.producer.PublishEvent(ctx, event); err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "campaign_id", Value: campaignID},
				observability.Field{Key: "entry_id", Value: entryID},
			), "failed to dispatch entry created event", err)
		}
	}()
}

// Wait blocks until in-flight dispatches finish or ctx is done.
func (p *Publisher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
