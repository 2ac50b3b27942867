package adapters

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"giveaway-server/internal/integrations"
)

const (
	SignatureHeader = "X-Webhook-Signature"

	WebhookEventPing            = "ping"
	WebhookEventTest            = "test"
	WebhookEventSubscriberAdded = "subscriber.added"
)

// Webhook POSTs JSON events to an organiser supplied URL. The body is signed with
// HMAC-SHA256 when a secret is configured.
type Webhook struct {
	cfg    integrations.Config
	client *apiClient
	now    func() time.Time
}

func NewWebhook(cfg integrations.Config, opts ...Option) *Webhook {
	o := buildOptions(opts)
	// the destination is the configured URL itself, not an API root
	o.baseURL = ""
	return &Webhook{
		cfg:    cfg,
		client: newAPIClient(o, cfg.WebhookURL, nil),
		now:    time.Now,
	}
}

// WebhookPayload is the body delivered for every event.
type WebhookPayload struct {
	Event     string                 `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Sign returns the hex HMAC-SHA256 of payload under secret.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (w *Webhook) deliver(ctx context.Context, event string, data map[string]interface{}) error {
	if u, err := url.Parse(w.cfg.WebhookURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &apiError{code: integrations.CodeInvalidConfig, message: "webhook URL must be an absolute http(s) URL"}
	}
	payload, err := json.Marshal(WebhookPayload{
		Event:     event,
		Timestamp: w.now().UTC().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}
	header := http.Header{}
	if w.cfg.SecretKey != "" {
		header.Set(SignatureHeader, Sign(w.cfg.SecretKey, payload))
	}
	return w.client.send(ctx, http.MethodPost, "", payload, header, nil)
}

// Verify sends a ping since a webhook has nothing read-only to check.
func (w *Webhook) Verify(ctx context.Context) integrations.Result {
	if err := w.deliver(ctx, WebhookEventPing, nil); err != nil {
		return failure("Webhook ping failed", err)
	}
	return integrations.Succeeded("Webhook endpoint responded", map[string]interface{}{"signed": w.cfg.SecretKey != ""})
}

func (w *Webhook) AddSubscriber(ctx context.Context, sub integrations.Subscriber) integrations.Result {
	data := map[string]interface{}{
		"email":      sub.Email,
		"first_name": sub.FirstName,
		"last_name":  sub.LastName,
	}
	if err := w.deliver(ctx, WebhookEventSubscriberAdded, data); err != nil {
		return failure("Webhook delivery failed", err)
	}
	return integrations.Succeeded("Subscriber delivered to webhook", nil)
}

func (w *Webhook) SendTest(ctx context.Context, recipient integrations.TestRecipient) integrations.Result {
	data := map[string]interface{}{"email": recipient.Email, "name": recipient.Name}
	if err := w.deliver(ctx, WebhookEventTest, data); err != nil {
		return failure("Webhook test delivery failed", err)
	}
	return integrations.Succeeded("Test event delivered to webhook", nil)
}

func (w *Webhook) GetProviderInfo(ctx context.Context) integrations.Result {
	host := ""
	if u, err := url.Parse(w.cfg.WebhookURL); err == nil {
		host = u.Host
	}
	return integrations.Succeeded("Webhook configuration", map[string]interface{}{
		"provider": string(integrations.ProviderWebhook),
		"host":     host,
		"signed":   w.cfg.SecretKey != "",
	})
}
