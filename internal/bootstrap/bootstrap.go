package bootstrap

import (
	"context"
	"fmt"
	"time"

	authHandler "giveaway-server/internal/auth/handler"
	authProcessor "giveaway-server/internal/auth/processor"
	kafkaClient "giveaway-server/internal/clients/kafka"
	redisClient "giveaway-server/internal/clients/redis"
	"giveaway-server/internal/config"
	entriesHandler "giveaway-server/internal/entries/handler"
	entriesProcessor "giveaway-server/internal/entries/processor"
	"giveaway-server/internal/events"
	"giveaway-server/internal/integrations/adapters"
	integrationsConsumer "giveaway-server/internal/integrations/consumer"
	integrationsHandler "giveaway-server/internal/integrations/handler"
	"giveaway-server/internal/integrations/secrets"
	integrationsService "giveaway-server/internal/integrations/service"
	"giveaway-server/internal/jobs"
	jobWorkers "giveaway-server/internal/jobs/workers"
	"giveaway-server/internal/leaderboard"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/ratelimit"
	"giveaway-server/internal/store"
	"giveaway-server/internal/tiers"
	winnersHandler "giveaway-server/internal/winners/handler"
	winnersProcessor "giveaway-server/internal/winners/processor"
	"giveaway-server/internal/workers"

	"github.com/hibiken/asynq"
)

const (
	entryRateLimitPrefix = "entries"
	publisherDrainWait   = 10 * time.Second
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Redis  *redisClient.Client

	// Services
	IntegrationService *integrationsService.IntegrationService
	EntryRateLimiter   *ratelimit.Service

	// Handlers
	AuthHandler         authHandler.Handler
	EntriesHandler      entriesHandler.Handler
	WinnersHandler      winnersHandler.Handler
	IntegrationsHandler integrationsHandler.Handler
	LeaderboardHandler  leaderboard.Handler

	// Clients (for cleanup)
	KafkaProducer  *kafkaClient.Producer
	EventPublisher *events.Publisher
	JobClient      *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis backs the leaderboard, the entry rate limiter and the job queue.
	// Everything degrades gracefully without it.
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "redis unavailable, continuing without leaderboard, rate limiting and bulk sync", err)
		deps.Redis = nil
	}

	// Initialize Kafka producer and the entry event publisher
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	deps.EventPublisher = events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize integration service
	var bulkSync integrationsService.BulkSyncEnqueuer
	if deps.Redis.IsEnabled() {
		deps.JobClient = jobs.NewClient(asynqRedisOpt(cfg.Redis), logger)
		bulkSync = deps.JobClient
	}
	retry := integrationsService.DefaultRetryPolicy()
	retry.MaxElapsed = cfg.Integrations.SyncMaxElapsed
	deps.IntegrationService = integrationsService.New(
		&deps.Store,
		adapters.NewFactory(adapters.WithTimeout(cfg.Integrations.ProviderTimeout)),
		secrets.NewBox(cfg.Integrations.SecretKey),
		bulkSync,
		retry,
		logger,
	)
	deps.IntegrationsHandler = integrationsHandler.New(deps.IntegrationService, logger)

	// Initialize leaderboard
	leaderboardSvc := leaderboard.New(deps.Redis, &deps.Store, logger)
	deps.LeaderboardHandler = leaderboard.NewHandler(leaderboardSvc, logger)

	// Initialize entries processor and handler
	tierSvc := tiers.New(&deps.Store, logger)
	entryProc := entriesProcessor.New(&deps.Store, tierSvc, deps.EventPublisher, leaderboardSvc, logger)
	deps.EntriesHandler = entriesHandler.New(&entryProc, logger)
	deps.EntryRateLimiter = ratelimit.NewService(deps.Redis, entryRateLimitPrefix, cfg.RateLimit.EntriesPerMinute, time.Minute, logger)

	// Initialize winners processor and handler
	winnerProc := winnersProcessor.New(&deps.Store, logger)
	deps.WinnersHandler = winnersHandler.New(&winnerProc, logger)

	// Initialize auth middleware
	tokens := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(tokens, logger)

	return deps, nil
}

// NewSyncConsumer builds the Kafka consumer that pushes new entries to the
// campaign's email provider.
func (d *Dependencies) NewSyncConsumer(cfg *config.Config) workers.EventConsumer {
	consumerConfig := workers.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic)
	if cfg.WorkerPool.SyncWorkers > 0 {
		consumerConfig.NumWorkers = cfg.WorkerPool.SyncWorkers
	}

	processor := integrationsConsumer.NewSyncProcessor(d.IntegrationService, d.Logger)
	return workers.NewConsumer(consumerConfig, processor, d.Logger)
}

// NewJobServer builds the asynq server and mux that run bulk syncs.
func (d *Dependencies) NewJobServer(cfg *config.Config) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynqRedisOpt(cfg.Redis),
		asynq.Config{
			Concurrency: 10,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				d.Logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: d.Logger},
		},
	)

	mux := asynq.NewServeMux()
	jobWorkers.NewSyncWorker(d.IntegrationService, d.Logger).Register(mux)
	return srv, mux
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.EventPublisher != nil {
		waitCtx, cancel := context.WithTimeout(ctx, publisherDrainWait)
		if err := d.EventPublisher.Wait(waitCtx); err != nil {
			d.Logger.Warn(ctx, "timed out waiting for in-flight entry events")
		}
		cancel()
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}

func asynqRedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
