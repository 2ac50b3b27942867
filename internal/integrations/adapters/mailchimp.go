package adapters

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"giveaway-server/internal/integrations"
)

// Mailchimp talks to the Marketing API v3. The data center comes from the key suffix.
type Mailchimp struct {
	cfg    integrations.Config
	dc     string
	client *apiClient
}

func NewMailchimp(cfg integrations.Config, opts ...Option) *Mailchimp {
	o := buildOptions(opts)
	dc := mailchimpDataCenter(cfg.APIKey)
	apiKey := cfg.APIKey
	return &Mailchimp{
		cfg: cfg,
		dc:  dc,
		client: newAPIClient(o, fmt.Sprintf("https://%s.api.mailchimp.com/3.0", dc), func(req *http.Request) {
			req.SetBasicAuth("giveaway", apiKey)
		}),
	}
}

// mailchimpDataCenter returns the part after the last hyphen, or "" if the key has none.
func mailchimpDataCenter(apiKey string) string {
	idx := strings.LastIndex(apiKey, "-")
	if idx <= 0 || idx == len(apiKey)-1 {
		return ""
	}
	dc := apiKey[idx+1:]
	for _, r := range dc {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return dc
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubscriberHash is Mailchimp's member id: md5 of the lowercased email.
func SubscriberHash(email string) string {
	sum := md5.Sum([]byte(normalizeEmail(email)))
	return hex.EncodeToString(sum[:])
}

func (m *Mailchimp) checkKey() (integrations.Result, bool) {
	if m.dc == "" {
		return integrations.Failed(integrations.CodeInvalidConfig,
			"invalid Mailchimp API key format: expected a data center suffix such as \"-us1\""), false
	}
	return integrations.Result{}, true
}

type mailchimpList struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stats struct {
		MemberCount int `json:"member_count"`
	} `json:"stats"`
}

func (m *Mailchimp) Verify(ctx context.Context) integrations.Result {
	if res, ok := m.checkKey(); !ok {
		return res
	}
	var ping struct {
		HealthStatus string `json:"health_status"`
	}
	if err := m.client.doJSON(ctx, http.MethodGet, "/ping", nil, &ping); err != nil {
		return failure("Mailchimp credentials check failed", err)
	}
	data := map[string]interface{}{"data_center": m.dc}
	if m.cfg.ListID != "" {
		var list mailchimpList
		path := "/lists/" + url.PathEscape(m.cfg.ListID) + "?fields=id,name,stats.member_count"
		if err := m.client.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
			return failure(fmt.Sprintf("Mailchimp audience %q is not accessible", m.cfg.ListID), err)
		}
		data["list_id"] = list.ID
		data["list_name"] = list.Name
		data["member_count"] = list.Stats.MemberCount
	}
	return integrations.Succeeded("Mailchimp connection verified", data)
}

func (m *Mailchimp) AddSubscriber(ctx context.Context, sub integrations.Subscriber) integrations.Result {
	if res, ok := m.checkKey(); !ok {
		return res
	}
	if m.cfg.ListID == "" {
		return integrations.Failed(integrations.CodeInvalidConfig, "Mailchimp audience id is required to add subscribers")
	}
	email := normalizeEmail(sub.Email)
	body := map[string]interface{}{
		"email_address": email,
		"status_if_new": "subscribed",
		"merge_fields": map[string]string{
			"FNAME": sub.FirstName,
			"LNAME": sub.LastName,
		},
	}
	hash := SubscriberHash(email)
	var member struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	path := "/lists/" + url.PathEscape(m.cfg.ListID) + "/members/" + hash
	if err := m.client.doJSON(ctx, http.MethodPut, path, body, &member); err != nil {
		return failure("Mailchimp subscriber upsert failed", err)
	}
	return integrations.Succeeded("Subscriber added to Mailchimp", map[string]interface{}{
		"subscriber_hash": hash,
		"status":          member.Status,
	})
}

func (m *Mailchimp) SendTest(ctx context.Context, recipient integrations.TestRecipient) integrations.Result {
	first, last := integrations.SplitName(recipient.Name)
	return m.AddSubscriber(ctx, integrations.Subscriber{Email: recipient.Email, FirstName: first, LastName: last})
}

func (m *Mailchimp) GetProviderInfo(ctx context.Context) integrations.Result {
	if res, ok := m.checkKey(); !ok {
		return res
	}
	var account struct {
		AccountName      string `json:"account_name"`
		Email            string `json:"email"`
		TotalSubscribers int    `json:"total_subscribers"`
	}
	if err := m.client.doJSON(ctx, http.MethodGet, "/?fields=account_name,email,total_subscribers", nil, &account); err != nil {
		return failure("Mailchimp account lookup failed", err)
	}
	data := map[string]interface{}{
		"provider":          string(integrations.ProviderMailchimp),
		"account_name":      account.AccountName,
		"email":             account.Email,
		"total_subscribers": account.TotalSubscribers,
	}
	if lists, res := m.GetLists(ctx); res.Success {
		data["lists"] = listsData(lists)
	}
	return integrations.Succeeded("Mailchimp account information", data)
}

func (m *Mailchimp) GetLists(ctx context.Context) ([]integrations.List, integrations.Result) {
	if res, ok := m.checkKey(); !ok {
		return nil, res
	}
	var resp struct {
		Lists []mailchimpList `json:"lists"`
	}
	path := "/lists?count=100&fields=lists.id,lists.name,lists.stats.member_count"
	if err := m.client.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, failure("Mailchimp audiences lookup failed", err)
	}
	lists := make([]integrations.List, 0, len(resp.Lists))
	for _, l := range resp.Lists {
		lists = append(lists, integrations.List{ID: l.ID, Name: l.Name, MemberCount: l.Stats.MemberCount})
	}
	return lists, integrations.Succeeded(fmt.Sprintf("Found %d audiences", len(lists)), nil)
}
