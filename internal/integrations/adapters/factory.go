// Package adapters implements integrations.Adapter for each supported provider.
package adapters

import (
	"fmt"

	"giveaway-server/internal/integrations"
)

// New builds the adapter for provider. Adapters hold no shared state and are
// cheap enough to construct per call.
func New(provider integrations.Provider, cfg integrations.Config, opts ...Option) (integrations.Adapter, error) {
	switch provider {
	case integrations.ProviderNone, "":
		return nil, integrations.ErrNoProviderSpecified
	case integrations.ProviderWebhook:
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("%w: webhook_url is required", integrations.ErrMissingConfig)
		}
		return NewWebhook(cfg, opts...), nil
	case integrations.ProviderMailchimp, integrations.ProviderConvertKit,
		integrations.ProviderMailerLite, integrations.ProviderSendGrid:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: api_key is required for %s", integrations.ErrMissingConfig, provider)
		}
	default:
		return nil, fmt.Errorf("%w: %q", integrations.ErrUnsupportedProvider, provider)
	}

	switch provider {
	case integrations.ProviderMailchimp:
		return NewMailchimp(cfg, opts...), nil
	case integrations.ProviderConvertKit:
		return NewConvertKit(cfg, opts...), nil
	case integrations.ProviderMailerLite:
		return NewMailerLite(cfg, opts...), nil
	default:
		return NewSendGrid(cfg, opts...), nil
	}
}

// Factory adapts New to an injectable dependency.
type Factory struct {
	opts []Option
}

func NewFactory(opts ...Option) Factory {
	return Factory{opts: opts}
}

func (f Factory) New(provider integrations.Provider, cfg integrations.Config) (integrations.Adapter, error) {
	return New(provider, cfg, f.opts...)
}
