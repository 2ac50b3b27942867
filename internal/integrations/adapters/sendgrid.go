package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"giveaway-server/internal/integrations"
)

const sendGridBaseURL = "https://api.sendgrid.com/v3"

// SendGrid syncs contacts through the Marketing Campaigns API.
type SendGrid struct {
	cfg    integrations.Config
	client *apiClient
}

func NewSendGrid(cfg integrations.Config, opts ...Option) *SendGrid {
	apiKey := cfg.APIKey
	return &SendGrid{
		cfg: cfg,
		client: newAPIClient(buildOptions(opts), sendGridBaseURL, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+apiKey)
		}),
	}
}

type sendGridList struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactCount int    `json:"contact_count"`
}

func (s *SendGrid) Verify(ctx context.Context) integrations.Result {
	var scopes struct {
		Scopes []string `json:"scopes"`
	}
	if err := s.client.doJSON(ctx, http.MethodGet, "/scopes", nil, &scopes); err != nil {
		return failure("SendGrid credentials check failed", err)
	}
	data := map[string]interface{}{"scope_count": len(scopes.Scopes)}
	if s.cfg.ListID != "" {
		var list sendGridList
		if err := s.client.doJSON(ctx, http.MethodGet, "/marketing/lists/"+url.PathEscape(s.cfg.ListID), nil, &list); err != nil {
			return failure(fmt.Sprintf("SendGrid list %q is not accessible", s.cfg.ListID), err)
		}
		data["list_id"] = list.ID
		data["list_name"] = list.Name
		data["member_count"] = list.ContactCount
	}
	return integrations.Succeeded("SendGrid connection verified", data)
}

// AddSubscriber upserts a single contact and associates the list in the same request.
func (s *SendGrid) AddSubscriber(ctx context.Context, sub integrations.Subscriber) integrations.Result {
	body := map[string]interface{}{
		"contacts": []map[string]string{{
			"email":      sub.Email,
			"first_name": sub.FirstName,
			"last_name":  sub.LastName,
		}},
	}
	if s.cfg.ListID != "" {
		body["list_ids"] = []string{s.cfg.ListID}
	}
	var resp struct {
		JobID string `json:"job_id"`
	}
	if err := s.client.doJSON(ctx, http.MethodPut, "/marketing/contacts", body, &resp); err != nil {
		return failure("SendGrid contact upsert failed", err)
	}
	return integrations.Succeeded("Subscriber queued in SendGrid", map[string]interface{}{"job_id": resp.JobID})
}

func (s *SendGrid) SendTest(ctx context.Context, recipient integrations.TestRecipient) integrations.Result {
	first, last := integrations.SplitName(recipient.Name)
	return s.AddSubscriber(ctx, integrations.Subscriber{Email: recipient.Email, FirstName: first, LastName: last})
}

func (s *SendGrid) GetProviderInfo(ctx context.Context) integrations.Result {
	var account struct {
		Type       string  `json:"type"`
		Reputation float64 `json:"reputation"`
	}
	if err := s.client.doJSON(ctx, http.MethodGet, "/user/account", nil, &account); err != nil {
		return failure("SendGrid account lookup failed", err)
	}
	data := map[string]interface{}{
		"provider":     string(integrations.ProviderSendGrid),
		"account_type": account.Type,
		"reputation":   account.Reputation,
	}
	if lists, res := s.GetLists(ctx); res.Success {
		data["lists"] = listsData(lists)
	}
	return integrations.Succeeded("SendGrid account information", data)
}

func (s *SendGrid) GetLists(ctx context.Context) ([]integrations.List, integrations.Result) {
	var resp struct {
		Result []sendGridList `json:"result"`
	}
	if err := s.client.doJSON(ctx, http.MethodGet, "/marketing/lists?page_size=100", nil, &resp); err != nil {
		return nil, failure("SendGrid lists lookup failed", err)
	}
	lists := make([]integrations.List, 0, len(resp.Result))
	for _, l := range resp.Result {
		lists = append(lists, integrations.List{ID: l.ID, Name: l.Name, MemberCount: l.ContactCount})
	}
	return lists, integrations.Succeeded(fmt.Sprintf("Found %d lists", len(lists)), nil)
}
