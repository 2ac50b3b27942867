package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=sync_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"errors"
	"fmt"

	"giveaway-server/internal/integrations/service"
	"giveaway-server/internal/jobs"
	"giveaway-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// BulkSyncer pushes every entry of a campaign to its provider
type BulkSyncer interface {
	BulkSync(ctx context.Context, campaignID uuid.UUID) (service.BulkSyncResult, error)
}

// SyncWorker handles integration bulk sync jobs
type SyncWorker struct {
	syncer BulkSyncer
	logger *observability.Logger
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(syncer BulkSyncer, logger *observability.Logger) *SyncWorker {
	return &SyncWorker{
		syncer: syncer,
		logger: logger,
	}
}

// Register adds the worker's handlers to mux.
func (w *SyncWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(jobs.TypeIntegrationBulkSync, w.ProcessIntegrationBulkSyncTask)
}

// ProcessIntegrationBulkSyncTask processes a bulk sync task. Tasks that can never
// succeed are not retried.
func (w *SyncWorker) ProcessIntegrationBulkSyncTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseIntegrationBulkSyncPayload(task)
	if err != nil {
		w.logger.Error(ctx, "invalid bulk sync payload", err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID})

	result, err := w.syncer.BulkSync(ctx, payload.CampaignID)
	if err != nil {
		if errors.Is(err, service.ErrIntegrationNotConfigured) || errors.Is(err, service.ErrIntegrationNotVerified) {
			w.logger.Warn(ctx, fmt.Sprintf("bulk sync abandoned: %s", err))
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "bulk sync failed", err)
		return err
	}

	w.logger.Info(ctx, fmt.Sprintf("bulk sync processed %d entries (%d failed)", result.Total, result.Failed))
	return nil
}
