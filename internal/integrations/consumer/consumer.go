// Package consumer syncs newly created entries to the campaign's email provider.
package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=consumer.go -destination=mocks_test.go -package=consumer

import (
	"context"
	"errors"
	"fmt"

	"giveaway-server/internal/events"
	"giveaway-server/internal/integrations/service"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/workers"

	"github.com/google/uuid"
)

// EntrySyncer pushes one entry to its campaign's provider
type EntrySyncer interface {
	SyncEntry(ctx context.Context, campaignID, entryID uuid.UUID) (service.SyncResult, error)
}

// SyncProcessor implements workers.EventProcessor for entry.created events.
type SyncProcessor struct {
	syncer EntrySyncer
	logger *observability.Logger
}

func NewSyncProcessor(syncer EntrySyncer, logger *observability.Logger) *SyncProcessor {
	return &SyncProcessor{syncer: syncer, logger: logger}
}

func (p *SyncProcessor) Name() string { return "integration-sync" }

// Process acknowledges provider failures and events that can never succeed.
// Only system failures are returned so the event is redelivered.
func (p *SyncProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	if event.Type != events.TypeEntryCreated {
		return nil
	}

	campaignID, err := uuid.Parse(event.CampaignID)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("dropping event with invalid campaign id %q", event.CampaignID))
		return nil
	}
	rawEntryID, _ := event.Data["entry_id"].(string)
	entryID, err := uuid.Parse(rawEntryID)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("dropping event with invalid entry id %q", rawEntryID))
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "entry_id", Value: entryID},
	)

	res, err := p.syncer.SyncEntry(ctx, campaignID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			p.logger.Warn(ctx, "entry no longer exists, skipping sync")
			return nil
		}
		return err
	}
	if res.Skipped {
		p.logger.Debug(ctx, "campaign has no verified integration, sync skipped")
	}
	return nil
}
