package service

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"giveaway-server/internal/integrations"
	"giveaway-server/internal/integrations/secrets"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// IntegrationStore defines the database operations required by IntegrationService
type IntegrationStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetEntryByID(ctx context.Context, entryID uuid.UUID) (store.Entry, error)
	GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Entry, error)
	GetCampaignIntegration(ctx context.Context, campaignID uuid.UUID) (store.CampaignIntegration, error)
	UpsertCampaignIntegration(ctx context.Context, params store.UpsertCampaignIntegrationParams) (store.CampaignIntegration, error)
	SetCampaignIntegrationVerified(ctx context.Context, verified store.CampaignIntegration, ok bool) error
	RecordIntegrationSync(ctx context.Context, campaignID uuid.UUID, success bool) error
	ResetIntegrationStats(ctx context.Context, campaignID uuid.UUID) error
	UpsertUserEmailService(ctx context.Context, params store.UpsertUserEmailServiceParams) (store.UserEmailService, error)
	GetUserEmailServices(ctx context.Context, userID uuid.UUID) ([]store.UserEmailService, error)
	DeleteUserEmailService(ctx context.Context, userID uuid.UUID, provider string) error
}

// AdapterFactory builds a provider adapter from decrypted configuration
type AdapterFactory interface {
	New(provider integrations.Provider, cfg integrations.Config) (integrations.Adapter, error)
}

// BulkSyncEnqueuer schedules a background sync of every entry of a campaign
type BulkSyncEnqueuer interface {
	EnqueueIntegrationBulkSync(ctx context.Context, campaignID uuid.UUID) error
}

var (
	ErrCampaignNotFound          = errors.New("campaign not found")
	ErrNotOwner                  = errors.New("user does not own this campaign")
	ErrEntryNotFound             = errors.New("entry not found")
	ErrInvalidProvider           = errors.New("invalid provider")
	ErrIntegrationNotConfigured  = errors.New("campaign has no email integration configured")
	ErrListsNotSupported         = errors.New("provider does not expose lists")
	ErrEmailServiceNotFound      = errors.New("email service not connected")
	ErrEmailServiceVerifyFailed  = errors.New("email service credentials could not be verified")
	ErrBulkSyncUnavailable       = errors.New("bulk sync is not available")
	ErrIntegrationNotVerified    = errors.New("integration must be verified before syncing")
	errProviderTemporarilyFailed = errors.New("provider call failed with a retryable error")
)

// RetryPolicy bounds how hard a single subscriber sync is retried.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, InitialInterval: 500 * time.Millisecond, MaxElapsed: 30 * time.Second}
}

type IntegrationService struct {
	store    IntegrationStore
	adapters AdapterFactory
	box      *secrets.Box
	jobs     BulkSyncEnqueuer
	retry    RetryPolicy
	logger   *observability.Logger

	mu       sync.Mutex
	breakers map[integrations.Provider]*gobreaker.CircuitBreaker
}

// New creates a new IntegrationService. jobs may be nil when no job queue is configured.
func New(store IntegrationStore, adapters AdapterFactory, box *secrets.Box, jobs BulkSyncEnqueuer, retry RetryPolicy, logger *observability.Logger) *IntegrationService {
	return &IntegrationService{
		store:    store,
		adapters: adapters,
		box:      box,
		jobs:     jobs,
		retry:    retry,
		logger:   logger,
		breakers: make(map[integrations.Provider]*gobreaker.CircuitBreaker),
	}
}

// SaveIntegrationRequest is the organiser supplied configuration. Empty secrets keep
// the stored value.
type SaveIntegrationRequest struct {
	Provider   string `json:"provider" binding:"required"`
	APIKey     string `json:"api_key"`
	ListID     string `json:"list_id"`
	FormID     string `json:"form_id"`
	TagID      string `json:"tag_id"`
	WebhookURL string `json:"webhook_url" binding:"omitempty,url"`
	SecretKey  string `json:"secret_key"`
}

type SyncStats struct {
	TotalSynced  int `json:"total_synced"`
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
}

// IntegrationView is the read model of a campaign integration. Secrets are never included.
type IntegrationView struct {
	CampaignID   uuid.UUID  `json:"campaign_id"`
	Provider     string     `json:"provider"`
	ListID       *string    `json:"list_id,omitempty"`
	FormID       *string    `json:"form_id,omitempty"`
	TagID        *string    `json:"tag_id,omitempty"`
	WebhookURL   *string    `json:"webhook_url,omitempty"`
	HasAPIKey    bool       `json:"has_api_key"`
	APIKeyHint   string     `json:"api_key_hint,omitempty"`
	HasSecretKey bool       `json:"has_secret_key"`
	IsVerified   bool       `json:"is_verified"`
	LastSynced   *time.Time `json:"last_synced,omitempty"`
	Stats        SyncStats  `json:"stats"`
}

func (s *IntegrationService) newView(ctx context.Context, ci store.CampaignIntegration) IntegrationView {
	view := IntegrationView{
		CampaignID:   ci.CampaignID,
		Provider:     ci.Provider,
		ListID:       ci.ListID,
		FormID:       ci.FormID,
		TagID:        ci.TagID,
		WebhookURL:   ci.WebhookURL,
		HasAPIKey:    len(ci.APIKeyEnc) > 0,
		HasSecretKey: len(ci.SecretKeyEnc) > 0,
		IsVerified:   ci.IsVerified,
		LastSynced:   ci.LastSynced,
		Stats: SyncStats{
			TotalSynced:  ci.TotalSynced,
			SuccessCount: ci.SuccessCount,
			FailureCount: ci.FailureCount,
		},
	}
	if view.HasAPIKey {
		if key, err := s.box.Open(ci.APIKeyEnc); err == nil {
			view.APIKeyHint = secrets.Mask(key)
		} else {
			s.logger.Warn(ctx, "stored api key could not be decrypted")
		}
	}
	return view
}

// GetCampaignIntegration returns the campaign's integration, or provider "none" when unset.
func (s *IntegrationService) GetCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID) (IntegrationView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if err := s.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return IntegrationView{}, err
	}

	ci, err := s.store.GetCampaignIntegration(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return IntegrationView{CampaignID: campaignID, Provider: string(integrations.ProviderNone)}, nil
		}
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return IntegrationView{}, err
	}
	return s.newView(ctx, ci), nil
}

// SaveCampaignIntegration validates and stores the configuration. Changing the provider
// or any credential clears verification.
func (s *IntegrationService) SaveCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID, req SaveIntegrationRequest) (IntegrationView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	provider, ok := integrations.ParseProvider(req.Provider)
	if !ok {
		return IntegrationView{}, fmt.Errorf("%w: %q", ErrInvalidProvider, req.Provider)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider", Value: string(provider)})

	if err := s.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return IntegrationView{}, err
	}

	existing, err := s.store.GetCampaignIntegration(ctx, campaignID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return IntegrationView{}, err
	}
	sameProvider := err == nil && existing.Provider == string(provider)

	params := store.UpsertCampaignIntegrationParams{
		CampaignID: campaignID,
		Provider:   string(provider),
	}
	if provider != integrations.ProviderNone {
		params.ListID = optionalString(req.ListID)
		params.FormID = optionalString(req.FormID)
		params.TagID = optionalString(req.TagID)
		params.WebhookURL = optionalString(req.WebhookURL)

		var keep []byte
		if sameProvider {
			keep = existing.APIKeyEnc
		}
		if params.APIKeyEnc, err = s.sealCredential(req.APIKey, keep); err != nil {
			s.logger.Error(ctx, "failed to encrypt api key", err)
			return IntegrationView{}, err
		}
		keep = nil
		if sameProvider {
			keep = existing.SecretKeyEnc
		}
		if params.SecretKeyEnc, err = s.sealCredential(req.SecretKey, keep); err != nil {
			s.logger.Error(ctx, "failed to encrypt secret key", err)
			return IntegrationView{}, err
		}

		cfg, err := s.decryptConfig(store.CampaignIntegration{
			APIKeyEnc:    params.APIKeyEnc,
			ListID:       params.ListID,
			FormID:       params.FormID,
			TagID:        params.TagID,
			WebhookURL:   params.WebhookURL,
			SecretKeyEnc: params.SecretKeyEnc,
		})
		if err != nil {
			return IntegrationView{}, err
		}
		if _, err := s.adapters.New(provider, cfg); err != nil {
			return IntegrationView{}, err
		}
	}

	saved, err := s.store.UpsertCampaignIntegration(ctx, params)
	if err != nil {
		s.logger.Error(ctx, "failed to save campaign integration", err)
		return IntegrationView{}, err
	}

	s.logger.Info(ctx, "campaign integration saved")
	return s.newView(ctx, saved), nil
}

// sealCredential encrypts value. An empty value keeps the stored ciphertext, and a
// value equal to the stored one reuses it so verification survives a resubmit.
func (s *IntegrationService) sealCredential(value string, stored []byte) ([]byte, error) {
	if value == "" {
		return stored, nil
	}
	if len(stored) > 0 {
		if current, err := s.box.Open(stored); err == nil && current == value {
			return stored, nil
		}
	}
	return s.box.Seal(value)
}

func (s *IntegrationService) decryptConfig(ci store.CampaignIntegration) (integrations.Config, error) {
	apiKey, err := s.box.Open(ci.APIKeyEnc)
	if err != nil {
		return integrations.Config{}, fmt.Errorf("failed to decrypt api key: %w", err)
	}
	secretKey, err := s.box.Open(ci.SecretKeyEnc)
	if err != nil {
		return integrations.Config{}, fmt.Errorf("failed to decrypt secret key: %w", err)
	}
	return integrations.Config{
		APIKey:     apiKey,
		ListID:     deref(ci.ListID),
		FormID:     deref(ci.FormID),
		TagID:      deref(ci.TagID),
		WebhookURL: deref(ci.WebhookURL),
		SecretKey:  secretKey,
	}, nil
}

// loadAdapter returns the stored integration and an adapter built from it.
func (s *IntegrationService) loadAdapter(ctx context.Context, campaignID uuid.UUID) (store.CampaignIntegration, integrations.Adapter, error) {
	ci, err := s.store.GetCampaignIntegration(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignIntegration{}, nil, ErrIntegrationNotConfigured
		}
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return store.CampaignIntegration{}, nil, err
	}
	provider, _ := integrations.ParseProvider(ci.Provider)
	if provider == integrations.ProviderNone {
		return ci, nil, ErrIntegrationNotConfigured
	}
	cfg, err := s.decryptConfig(ci)
	if err != nil {
		s.logger.Error(ctx, "failed to decrypt integration credentials", err)
		return ci, nil, err
	}
	adapter, err := s.adapters.New(provider, cfg)
	if err != nil {
		return ci, nil, err
	}
	return ci, adapter, nil
}

func (s *IntegrationService) ownedAdapter(ctx context.Context, ownerID, campaignID uuid.UUID) (store.CampaignIntegration, integrations.Adapter, error) {
	if err := s.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return store.CampaignIntegration{}, nil, err
	}
	return s.loadAdapter(ctx, campaignID)
}

// VerifyCampaignIntegration runs the provider's credentials check and records the outcome
// as the integration's verified flag.
func (s *IntegrationService) VerifyCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID) (integrations.Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	ci, adapter, err := s.ownedAdapter(ctx, ownerID, campaignID)
	if err != nil {
		return integrations.Result{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider", Value: ci.Provider})

	res := adapter.Verify(ctx)
	if res.Success != ci.IsVerified {
		if err := s.store.SetCampaignIntegrationVerified(ctx, ci, res.Success); err != nil {
			if errors.Is(err, store.ErrConflict) {
				s.logger.Warn(ctx, "integration changed during verification, result discarded")
				return integrations.Result{}, err
			}
			s.logger.Error(ctx, "failed to update integration verification", err)
			return integrations.Result{}, err
		}
	}
	if !res.Success {
		s.logger.Warn(ctx, fmt.Sprintf("integration verification failed: %s", res.Message))
	}
	return res, nil
}

func (s *IntegrationService) SendTest(ctx context.Context, ownerID, campaignID uuid.UUID, recipient integrations.TestRecipient) (integrations.Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	_, adapter, err := s.ownedAdapter(ctx, ownerID, campaignID)
	if err != nil {
		return integrations.Result{}, err
	}
	return adapter.SendTest(ctx, recipient), nil
}

// GetProviderInfo is display only. Provider failures come back as an unsuccessful Result.
func (s *IntegrationService) GetProviderInfo(ctx context.Context, ownerID, campaignID uuid.UUID) (integrations.Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	_, adapter, err := s.ownedAdapter(ctx, ownerID, campaignID)
	if err != nil {
		return integrations.Result{}, err
	}
	return adapter.GetProviderInfo(ctx), nil
}

func (s *IntegrationService) GetLists(ctx context.Context, ownerID, campaignID uuid.UUID) ([]integrations.List, integrations.Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	_, adapter, err := s.ownedAdapter(ctx, ownerID, campaignID)
	if err != nil {
		return nil, integrations.Result{}, err
	}
	lister, ok := adapter.(integrations.ListProvider)
	if !ok {
		return nil, integrations.Result{}, ErrListsNotSupported
	}
	lists, res := lister.GetLists(ctx)
	if lists == nil {
		lists = []integrations.List{}
	}
	return lists, res, nil
}

// ResetStats zeroes the sync counters. It is the only way they ever decrease.
func (s *IntegrationService) ResetStats(ctx context.Context, ownerID, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if err := s.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return err
	}
	if err := s.store.ResetIntegrationStats(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrIntegrationNotConfigured
		}
		s.logger.Error(ctx, "failed to reset integration stats", err)
		return err
	}
	s.logger.Info(ctx, "integration stats reset")
	return nil
}

func (s *IntegrationService) verifyCampaignAccess(ctx context.Context, ownerID, campaignID uuid.UUID) error {
	campaign, err := s.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return err
	}
	if campaign.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
