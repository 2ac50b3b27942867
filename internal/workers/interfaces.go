package workers

import (
	"context"

	"giveaway-server/internal/clients/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// EventMessage is the envelope read from the entry events topic.
type EventMessage = kafka.EventMessage

// EventProcessor handles one event. Implementations must be idempotent: an error
// leaves the offset uncommitted and the event is redelivered.
type EventProcessor interface {
	Process(ctx context.Context, event EventMessage) error
	Name() string
}

// EventConsumer reads events and fans them out to workers.
type EventConsumer interface {
	// Start blocks until Stop is called.
	Start(ctx context.Context) error
	// Stop drains in-flight events and returns after shutdown.
	Stop()
}

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}
