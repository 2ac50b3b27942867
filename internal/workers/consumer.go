package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"giveaway-server/internal/observability"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string

	// NumWorkers is the number of events processed concurrently.
	NumWorkers int
	// QueueSize buffers fetched events ahead of the workers.
	QueueSize int
	// DrainTimeout bounds how long Stop waits for in-flight events.
	DrainTimeout time.Duration
	// ProcessTimeout bounds a single Process call.
	ProcessTimeout time.Duration
	// FetchBackoff is the pause after a failed fetch.
	FetchBackoff time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:        brokers,
		ConsumerGroup:  consumerGroup,
		Topic:          topic,
		NumWorkers:     5,
		QueueSize:      100,
		DrainTimeout:   30 * time.Second,
		ProcessTimeout: 2 * time.Minute,
		FetchBackoff:   time.Second,
	}
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	d := DefaultConsumerConfig(c.Brokers, c.ConsumerGroup, c.Topic)
	if c.NumWorkers <= 0 {
		c.NumWorkers = d.NumWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = d.DrainTimeout
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = d.ProcessTimeout
	}
	if c.FetchBackoff <= 0 {
		c.FetchBackoff = d.FetchBackoff
	}
	return c
}

// fetched pairs an event with its Kafka message for offset tracking.
type fetched struct {
	event EventMessage
	msg   kafkago.Message
}

type consumer struct {
	config    ConsumerConfig
	reader    MessageReader
	processor EventProcessor
	logger    *observability.Logger

	eventCh chan fetched

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopping atomic.Bool
	stopOnce sync.Once
}

// NewConsumer creates a consumer reading from Kafka with manual offset commits.
func NewConsumer(config ConsumerConfig, processor EventProcessor, logger *observability.Logger) EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0,
	})
	return NewConsumerWithReader(config, reader, processor, logger)
}

// NewConsumerWithReader creates a consumer over an existing reader.
func NewConsumerWithReader(config ConsumerConfig, reader MessageReader, processor EventProcessor, logger *observability.Logger) EventConsumer {
	config = config.withDefaults()
	c := &consumer{
		config:    config,
		reader:    reader,
		processor: processor,
		logger:    logger,
		eventCh:   make(chan fetched, config.QueueSize),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: processor.Name()},
		observability.Field{Key: "consumer_group", Value: config.ConsumerGroup},
		observability.Field{Key: "topic", Value: config.Topic},
		observability.Field{Key: "num_workers", Value: config.NumWorkers},
	)
	logger.Info(ctx, fmt.Sprintf("initialized consumer for %s processor", processor.Name()))
	return c
}

// Start begins consuming events and blocks until Stop is called or ctx is done.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	// Workers keep running after ctx is cancelled so in-flight events finish.
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCh:
			cancel()
		case <-fetchCtx.Done():
		}
	}()

	logCtx := observability.WithFields(context.WithoutCancel(ctx),
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)
	c.logger.Info(logCtx, fmt.Sprintf("starting consumer for %s with %d workers", c.processor.Name(), c.config.NumWorkers))

	var workerWg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		workerWg.Add(1)
		go c.worker(logCtx, &workerWg, i)
	}

	c.fetchLoop(fetchCtx)
	close(c.eventCh)

	done := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(done)
	}()
	select {
	case <-done:
		c.logger.Info(logCtx, "all workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(logCtx, "drain timeout, some events may be redelivered")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(logCtx, "failed to close kafka reader", err)
	}
	c.logger.Info(logCtx, fmt.Sprintf("consumer stopped for %s", c.processor.Name()))
	return nil
}

func (c *consumer) fetchLoop(ctx context.Context) {
	for !c.stopping.Load() {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			select {
			case <-time.After(c.config.FetchBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Poison message: commit so it is not redelivered forever.
			c.logger.Error(ctx, fmt.Sprintf("failed to unmarshal event at offset %d, skipping", msg.Offset), err)
			if err := c.reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
				c.logger.Error(ctx, "failed to commit offset", err)
			}
			continue
		}

		select {
		case c.eventCh <- fetched{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

func (c *consumer) worker(ctx context.Context, wg *sync.WaitGroup, id int) {
	defer wg.Done()
	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: id})

	for e := range c.eventCh {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
		)
		if err := c.process(eventCtx, e.event); err != nil {
			c.logger.Error(eventCtx, "failed to process event, leaving offset uncommitted", err)
			continue
		}
		if c.reader == nil {
			continue
		}
		if err := c.reader.CommitMessages(ctx, e.msg); err != nil {
			c.logger.Error(eventCtx, "failed to commit offset", err)
		}
	}
}

func (c *consumer) process(ctx context.Context, event EventMessage) error {
	if c.config.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ProcessTimeout)
		defer cancel()
	}
	return c.processor.Process(ctx, event)
}

// Stop signals the fetch loop to stop and waits for Start to return.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		c.logger.Info(observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: c.processor.Name()},
		), fmt.Sprintf("stopping consumer for %s", c.processor.Name()))

		c.stopping.Store(true)
		close(c.stopCh)
		<-c.doneCh
	})
}
