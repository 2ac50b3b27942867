package jobs

import (
	"context"
	"errors"
	"fmt"

	"giveaway-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the subset of *asynq.Client used to enqueue tasks
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client TaskEnqueuer
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisConnOpt, logger *observability.Logger) *Client {
	return NewClientWithEnqueuer(asynq.NewClient(redisOpt), logger)
}

func NewClientWithEnqueuer(enqueuer TaskEnqueuer, logger *observability.Logger) *Client {
	return &Client{
		client: enqueuer,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueIntegrationBulkSync schedules a sync of every entry of the campaign.
// A sync that is already pending for the campaign is treated as success.
func (c *Client) EnqueueIntegrationBulkSync(ctx context.Context, campaignID uuid.UUID) error {
	task, err := NewIntegrationBulkSyncTask(IntegrationBulkSyncPayload{CampaignID: campaignID})
	if err != nil {
		c.logger.Error(ctx, "failed to create bulk sync task", err)
		return fmt.Errorf("failed to create bulk sync task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			c.logger.Info(ctx, "bulk sync already pending for campaign")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue bulk sync task", err)
		return fmt.Errorf("failed to enqueue bulk sync task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued bulk sync task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
