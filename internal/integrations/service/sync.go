package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"giveaway-server/internal/integrations"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// SyncResult is the outcome of pushing one entry to the campaign's provider.
type SyncResult struct {
	Skipped bool                `json:"skipped"`
	Result  integrations.Result `json:"result"`
}

// BulkSyncResult summarises a full campaign sync.
type BulkSyncResult struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// SyncEntry pushes one entrant to the configured provider. It is skipped when the
// campaign has no verified integration. Provider failures are recorded in the stats
// and returned in the result; only system failures are returned as errors.
func (s *IntegrationService) SyncEntry(ctx context.Context, campaignID, entryID uuid.UUID) (SyncResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "entry_id", Value: entryID},
	)

	ci, err := s.store.GetCampaignIntegration(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SyncResult{Skipped: true}, nil
		}
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return SyncResult{}, err
	}
	if ci.Provider == string(integrations.ProviderNone) || !ci.IsVerified {
		return SyncResult{Skipped: true}, nil
	}

	entry, err := s.store.GetEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SyncResult{}, ErrEntryNotFound
		}
		s.logger.Error(ctx, "failed to get entry", err)
		return SyncResult{}, err
	}
	if entry.CampaignID != campaignID {
		return SyncResult{}, ErrEntryNotFound
	}

	res, err := s.syncToProvider(ctx, ci, entry)
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Result: res}, nil
}

// syncToProvider sends entry and records the attempt in the integration stats.
func (s *IntegrationService) syncToProvider(ctx context.Context, ci store.CampaignIntegration, entry store.Entry) (integrations.Result, error) {
	provider, _ := integrations.ParseProvider(ci.Provider)
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider", Value: string(provider)})

	var res integrations.Result
	cfg, err := s.decryptConfig(ci)
	if err != nil {
		s.logger.Error(ctx, "failed to decrypt integration credentials", err)
		res = integrations.Failed(integrations.CodeInvalidConfig, "stored credentials could not be read")
	} else if adapter, err := s.adapters.New(provider, cfg); err != nil {
		res = integrations.Failed(integrations.CodeInvalidConfig, err.Error())
	} else {
		first, last := integrations.SplitName(deref(entry.Name))
		res = s.addSubscriberWithRetry(ctx, provider, adapter, integrations.Subscriber{
			Email:     entry.Email,
			FirstName: first,
			LastName:  last,
		})
	}

	if err := s.store.RecordIntegrationSync(ctx, ci.CampaignID, res.Success); err != nil {
		s.logger.Error(ctx, "failed to record integration sync", err)
		return res, err
	}

	if res.Success {
		s.logger.Info(ctx, "entry synced to provider")
	} else {
		s.logger.Warn(ctx, fmt.Sprintf("entry sync failed (%s): %s", res.Code, res.Message))
	}
	return res, nil
}

// addSubscriberWithRetry retries retryable failures with exponential backoff inside
// the provider's circuit breaker.
func (s *IntegrationService) addSubscriberWithRetry(ctx context.Context, provider integrations.Provider, adapter integrations.Adapter, sub integrations.Subscriber) integrations.Result {
	breaker := s.breakerFor(provider)
	var res integrations.Result
	attempts := 0

	operation := func() error {
		attempts++
		_, err := breaker.Execute(func() (interface{}, error) {
			res = adapter.AddSubscriber(ctx, sub)
			if !res.Success && res.Code.Retryable() {
				return nil, errProviderTemporarilyFailed
			}
			return nil, nil
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			res = integrations.Failed(integrations.CodeProviderError,
				fmt.Sprintf("%s is temporarily unavailable, sync paused", provider))
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retry.InitialInterval
	bo.MaxElapsedTime = s.retry.MaxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, s.retry.MaxRetries), ctx)); err != nil {
		s.logger.Debug(ctx, fmt.Sprintf("add subscriber gave up after %d attempt(s)", attempts))
	}
	return res
}

func (s *IntegrationService) breakerFor(provider integrations.Provider) *gobreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, ok := s.breakers[provider]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        string(provider),
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ctx := observability.WithFields(context.Background(),
				observability.Field{Key: "provider", Value: name},
				observability.Field{Key: "from", Value: from.String()},
				observability.Field{Key: "to", Value: to.String()},
			)
			s.logger.Warn(ctx, "provider circuit breaker state change")
		},
	})
	s.breakers[provider] = cb
	return cb
}

// EnqueueBulkSync schedules a background sync of every entry of the campaign.
func (s *IntegrationService) EnqueueBulkSync(ctx context.Context, ownerID, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if s.jobs == nil {
		return ErrBulkSyncUnavailable
	}
	ci, _, err := s.ownedAdapter(ctx, ownerID, campaignID)
	if err != nil {
		return err
	}
	if !ci.IsVerified {
		return ErrIntegrationNotVerified
	}
	if err := s.jobs.EnqueueIntegrationBulkSync(ctx, campaignID); err != nil {
		s.logger.Error(ctx, "failed to enqueue bulk sync", err)
		return err
	}
	s.logger.Info(ctx, "bulk sync enqueued")
	return nil
}

// BulkSync pushes every entry of the campaign. It runs from the job worker.
func (s *IntegrationService) BulkSync(ctx context.Context, campaignID uuid.UUID) (BulkSyncResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	ci, err := s.store.GetCampaignIntegration(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return BulkSyncResult{}, ErrIntegrationNotConfigured
		}
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return BulkSyncResult{}, err
	}
	if ci.Provider == string(integrations.ProviderNone) {
		return BulkSyncResult{}, ErrIntegrationNotConfigured
	}
	if !ci.IsVerified {
		return BulkSyncResult{}, ErrIntegrationNotVerified
	}

	entries, err := s.store.GetEntriesByCampaign(ctx, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign entries", err)
		return BulkSyncResult{}, err
	}

	result := BulkSyncResult{Total: len(entries)}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		res, err := s.syncToProvider(observability.WithFields(ctx, observability.Field{Key: "entry_id", Value: entry.ID}), ci, entry)
		if err != nil {
			return result, err
		}
		if res.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	s.logger.Info(ctx, fmt.Sprintf("bulk sync finished: %d succeeded, %d failed", result.Succeeded, result.Failed))
	return result, nil
}
