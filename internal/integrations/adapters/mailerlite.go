package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"giveaway-server/internal/integrations"
)

const mailerLiteBaseURL = "https://connect.mailerlite.com/api"

// MailerLite calls its lists groups; ListID holds a group id.
type MailerLite struct {
	cfg    integrations.Config
	client *apiClient
}

func NewMailerLite(cfg integrations.Config, opts ...Option) *MailerLite {
	apiKey := cfg.APIKey
	return &MailerLite{
		cfg: cfg,
		client: newAPIClient(buildOptions(opts), mailerLiteBaseURL, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+apiKey)
		}),
	}
}

type mailerLiteGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ActiveCount int    `json:"active_count"`
}

func (m *MailerLite) Verify(ctx context.Context) integrations.Result {
	var page struct {
		Data []mailerLiteGroup `json:"data"`
	}
	if err := m.client.doJSON(ctx, http.MethodGet, "/groups?limit=1", nil, &page); err != nil {
		return failure("MailerLite credentials check failed", err)
	}
	data := map[string]interface{}{}
	if m.cfg.ListID != "" {
		var group struct {
			Data mailerLiteGroup `json:"data"`
		}
		if err := m.client.doJSON(ctx, http.MethodGet, "/groups/"+url.PathEscape(m.cfg.ListID), nil, &group); err != nil {
			return failure(fmt.Sprintf("MailerLite group %q is not accessible", m.cfg.ListID), err)
		}
		data["group_id"] = group.Data.ID
		data["group_name"] = group.Data.Name
		data["member_count"] = group.Data.ActiveCount
	}
	return integrations.Succeeded("MailerLite connection verified", data)
}

// AddSubscriber relies on POST /subscribers being an upsert keyed by email.
func (m *MailerLite) AddSubscriber(ctx context.Context, sub integrations.Subscriber) integrations.Result {
	body := map[string]interface{}{
		"email": sub.Email,
		"fields": map[string]string{
			"name":      sub.FirstName,
			"last_name": sub.LastName,
		},
	}
	if m.cfg.ListID != "" {
		body["groups"] = []string{m.cfg.ListID}
	}
	var resp struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := m.client.doJSON(ctx, http.MethodPost, "/subscribers", body, &resp); err != nil {
		return failure("MailerLite subscriber upsert failed", err)
	}
	return integrations.Succeeded("Subscriber added to MailerLite", map[string]interface{}{
		"subscriber_id": resp.Data.ID,
		"status":        resp.Data.Status,
	})
}

func (m *MailerLite) SendTest(ctx context.Context, recipient integrations.TestRecipient) integrations.Result {
	first, last := integrations.SplitName(recipient.Name)
	return m.AddSubscriber(ctx, integrations.Subscriber{Email: recipient.Email, FirstName: first, LastName: last})
}

func (m *MailerLite) GetProviderInfo(ctx context.Context) integrations.Result {
	lists, res := m.GetLists(ctx)
	if !res.Success {
		return res
	}
	total := 0
	for _, l := range lists {
		total += l.MemberCount
	}
	return integrations.Succeeded("MailerLite account information", map[string]interface{}{
		"provider":          string(integrations.ProviderMailerLite),
		"group_count":       len(lists),
		"total_subscribers": total,
		"lists":             listsData(lists),
	})
}

func (m *MailerLite) GetLists(ctx context.Context) ([]integrations.List, integrations.Result) {
	var resp struct {
		Data []mailerLiteGroup `json:"data"`
	}
	if err := m.client.doJSON(ctx, http.MethodGet, "/groups?limit=100", nil, &resp); err != nil {
		return nil, failure("MailerLite groups lookup failed", err)
	}
	lists := make([]integrations.List, 0, len(resp.Data))
	for _, g := range resp.Data {
		lists = append(lists, integrations.List{ID: g.ID, Name: g.Name, MemberCount: g.ActiveCount})
	}
	return lists, integrations.Succeeded(fmt.Sprintf("Found %d groups", len(lists)), nil)
}
