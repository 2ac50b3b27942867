package integrations

import (
	"context"
	"errors"
	"strings"
)

// Provider names an email-marketing destination a campaign can sync entrants to.
type Provider string

const (
	ProviderNone       Provider = "none"
	ProviderMailchimp  Provider = "mailchimp"
	ProviderConvertKit Provider = "convertkit"
	ProviderMailerLite Provider = "mailerlite"
	ProviderSendGrid   Provider = "sendgrid"
	ProviderWebhook    Provider = "webhook"
)

var knownProviders = []Provider{
	ProviderNone,
	ProviderMailchimp,
	ProviderConvertKit,
	ProviderMailerLite,
	ProviderSendGrid,
	ProviderWebhook,
}

// ParseProvider normalises a provider name. An empty name means none.
func ParseProvider(name string) (Provider, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ProviderNone, true
	}
	for _, p := range knownProviders {
		if string(p) == name {
			return p, true
		}
	}
	return Provider(name), false
}

// IsEmailService reports whether p is an email provider an organiser can connect
// to their account. Webhooks are configured per campaign only.
func (p Provider) IsEmailService() bool {
	switch p {
	case ProviderMailchimp, ProviderConvertKit, ProviderMailerLite, ProviderSendGrid:
		return true
	}
	return false
}

var (
	ErrNoProviderSpecified = errors.New("no provider specified")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrMissingConfig       = errors.New("missing required integration configuration")
)

// Config carries decrypted provider credentials and destination identifiers.
type Config struct {
	APIKey     string
	ListID     string
	FormID     string
	TagID      string
	WebhookURL string
	SecretKey  string
}

// ResultCode classifies a failed provider call.
type ResultCode string

const (
	CodeProviderTimeout ResultCode = "provider_timeout"
	CodeUnauthorized    ResultCode = "unauthorized"
	CodeNotFound        ResultCode = "not_found"
	CodeNetworkError    ResultCode = "network_error"
	CodeRateLimited     ResultCode = "rate_limited"
	CodeProviderError   ResultCode = "provider_error"
	CodeRejected        ResultCode = "rejected"
	CodeInvalidConfig   ResultCode = "invalid_config"
)

// Retryable reports whether the same call may succeed if attempted again.
func (c ResultCode) Retryable() bool {
	switch c {
	case CodeProviderTimeout, CodeNetworkError, CodeRateLimited, CodeProviderError:
		return true
	}
	return false
}

// Result is the uniform outcome of every adapter call. Provider-side failures are
// reported here rather than as errors.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Code    ResultCode             `json:"code,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func Succeeded(message string, data map[string]interface{}) Result {
	return Result{Success: true, Message: message, Data: data}
}

func Failed(code ResultCode, message string) Result {
	return Result{Success: false, Message: message, Code: code}
}

// Subscriber is the contact pushed to a provider when an entrant signs up.
type Subscriber struct {
	Email     string
	FirstName string
	LastName  string
}

// TestRecipient is the address an organiser uses to try an integration end to end.
type TestRecipient struct {
	Email string
	Name  string
}

// SplitName turns a free-form display name into first and last name.
func SplitName(name string) (first, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// List is a destination audience on the provider side (list, group, form).
type List struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

// Adapter is the capability set every provider implements.
type Adapter interface {
	// Verify checks the credentials and, when configured, that the destination exists.
	// It never mutates remote state except for the webhook ping.
	Verify(ctx context.Context) Result
	// AddSubscriber upserts a contact and is safe to repeat for the same email.
	AddSubscriber(ctx context.Context, sub Subscriber) Result
	SendTest(ctx context.Context, recipient TestRecipient) Result
	// GetProviderInfo is best effort display metadata.
	GetProviderInfo(ctx context.Context) Result
}

// ListProvider is implemented by adapters that can enumerate destinations.
type ListProvider interface {
	GetLists(ctx context.Context) ([]List, Result)
}
