package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"giveaway-server/internal/integrations"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/google/uuid"
)

// EmailServiceView is one connected provider account without its key.
type EmailServiceView struct {
	Connected   bool                   `json:"connected"`
	ConnectedAt *time.Time             `json:"connected_at,omitempty"`
	AccountInfo map[string]interface{} `json:"account_info,omitempty"`
}

func parseEmailServiceProvider(name string) (integrations.Provider, error) {
	provider, ok := integrations.ParseProvider(name)
	if !ok || !provider.IsEmailService() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProvider, name)
	}
	return provider, nil
}

// ConnectEmailService verifies apiKey against the provider and stores it for the user
// together with best effort account information.
func (s *IntegrationService) ConnectEmailService(ctx context.Context, userID uuid.UUID, providerName, apiKey string) (EmailServiceView, error) {
	provider, err := parseEmailServiceProvider(providerName)
	if err != nil {
		return EmailServiceView{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "provider", Value: string(provider)},
	)

	adapter, err := s.adapters.New(provider, integrations.Config{APIKey: apiKey})
	if err != nil {
		return EmailServiceView{}, err
	}
	if res := adapter.Verify(ctx); !res.Success {
		s.logger.Warn(ctx, fmt.Sprintf("email service verification failed: %s", res.Message))
		return EmailServiceView{}, fmt.Errorf("%w: %s", ErrEmailServiceVerifyFailed, res.Message)
	}

	var accountInfo store.JSONB
	if info := adapter.GetProviderInfo(ctx); info.Success {
		accountInfo = store.JSONB(info.Data)
	} else {
		s.logger.Warn(ctx, "failed to fetch provider account info")
	}

	enc, err := s.box.Seal(apiKey)
	if err != nil {
		s.logger.Error(ctx, "failed to encrypt api key", err)
		return EmailServiceView{}, err
	}
	saved, err := s.store.UpsertUserEmailService(ctx, store.UpsertUserEmailServiceParams{
		UserID:      userID,
		Provider:    string(provider),
		APIKeyEnc:   enc,
		AccountInfo: accountInfo,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to save email service", err)
		return EmailServiceView{}, err
	}

	s.logger.Info(ctx, "email service connected")
	return newEmailServiceView(saved), nil
}

// ListEmailServices returns the user's connected providers keyed by provider name.
func (s *IntegrationService) ListEmailServices(ctx context.Context, userID uuid.UUID) (map[string]EmailServiceView, error) {
	services, err := s.store.GetUserEmailServices(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list email services", err)
		return nil, err
	}
	views := make(map[string]EmailServiceView, len(services))
	for _, svc := range services {
		views[svc.Provider] = newEmailServiceView(svc)
	}
	return views, nil
}

func (s *IntegrationService) DisconnectEmailService(ctx context.Context, userID uuid.UUID, providerName string) error {
	provider, err := parseEmailServiceProvider(providerName)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "provider", Value: string(provider)},
	)

	if err := s.store.DeleteUserEmailService(ctx, userID, string(provider)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailServiceNotFound
		}
		s.logger.Error(ctx, "failed to disconnect email service", err)
		return err
	}
	s.logger.Info(ctx, "email service disconnected")
	return nil
}

func newEmailServiceView(svc store.UserEmailService) EmailServiceView {
	return EmailServiceView{
		Connected:   svc.Connected,
		ConnectedAt: svc.ConnectedAt,
		AccountInfo: svc.AccountInfo,
	}
}
