package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"giveaway-server/internal/integrations"
)

const convertKitBaseURL = "https://api.convertkit.com/v3"

// ConvertKit authenticates with the api_key parameter on every call.
type ConvertKit struct {
	cfg    integrations.Config
	client *apiClient
}

func NewConvertKit(cfg integrations.Config, opts ...Option) *ConvertKit {
	return &ConvertKit{cfg: cfg, client: newAPIClient(buildOptions(opts), convertKitBaseURL, nil)}
}

type convertKitResource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type convertKitSubscription struct {
	Subscription struct {
		ID         int64 `json:"id"`
		Subscriber struct {
			ID int64 `json:"id"`
		} `json:"subscriber"`
	} `json:"subscription"`
}

func (k *ConvertKit) keyQuery() string {
	return "?api_key=" + url.QueryEscape(k.cfg.APIKey)
}

func (k *ConvertKit) forms(ctx context.Context) ([]convertKitResource, error) {
	var resp struct {
		Forms []convertKitResource `json:"forms"`
	}
	err := k.client.doJSON(ctx, http.MethodGet, "/forms"+k.keyQuery(), nil, &resp)
	return resp.Forms, err
}

func (k *ConvertKit) tags(ctx context.Context) ([]convertKitResource, error) {
	var resp struct {
		Tags []convertKitResource `json:"tags"`
	}
	err := k.client.doJSON(ctx, http.MethodGet, "/tags"+k.keyQuery(), nil, &resp)
	return resp.Tags, err
}

func findResource(items []convertKitResource, id string) (convertKitResource, bool) {
	for _, it := range items {
		if strconv.FormatInt(it.ID, 10) == id {
			return it, true
		}
	}
	return convertKitResource{}, false
}

func (k *ConvertKit) Verify(ctx context.Context) integrations.Result {
	forms, err := k.forms(ctx)
	if err != nil {
		return failure("ConvertKit credentials check failed", err)
	}
	data := map[string]interface{}{"form_count": len(forms)}
	if k.cfg.FormID != "" {
		form, ok := findResource(forms, k.cfg.FormID)
		if !ok {
			return integrations.Failed(integrations.CodeNotFound, fmt.Sprintf("ConvertKit form %q was not found", k.cfg.FormID))
		}
		data["form_name"] = form.Name
	}
	if k.cfg.TagID != "" {
		tags, err := k.tags(ctx)
		if err != nil {
			return failure("ConvertKit tags lookup failed", err)
		}
		tag, ok := findResource(tags, k.cfg.TagID)
		if !ok {
			return integrations.Failed(integrations.CodeNotFound, fmt.Sprintf("ConvertKit tag %q was not found", k.cfg.TagID))
		}
		data["tag_name"] = tag.Name
	}
	return integrations.Succeeded("ConvertKit connection verified", data)
}

// AddSubscriber subscribes the contact through the configured form, or creates it on
// the account when no form is set, then applies the tag. Each call runs only when the
// previous one succeeded.
func (k *ConvertKit) AddSubscriber(ctx context.Context, sub integrations.Subscriber) integrations.Result {
	base := map[string]interface{}{
		"api_key":    k.cfg.APIKey,
		"email":      sub.Email,
		"first_name": sub.FirstName,
	}
	if sub.LastName != "" {
		base["fields"] = map[string]string{"last_name": sub.LastName}
	}

	steps := []string{}
	var subscriberID int64
	if k.cfg.FormID != "" {
		var resp convertKitSubscription
		path := "/forms/" + url.PathEscape(k.cfg.FormID) + "/subscribe"
		if err := k.client.doJSON(ctx, http.MethodPost, path, base, &resp); err != nil {
			return failure("ConvertKit form subscription failed", err)
		}
		steps = append(steps, "form")
		subscriberID = resp.Subscription.Subscriber.ID
	} else {
		var created struct {
			Subscriber struct {
				ID int64 `json:"id"`
			} `json:"subscriber"`
		}
		account := map[string]interface{}{
			"api_key":       k.cfg.APIKey,
			"email_address": sub.Email,
			"first_name":    sub.FirstName,
		}
		if err := k.client.doJSON(ctx, http.MethodPost, "/subscribers", account, &created); err != nil {
			return failure("ConvertKit subscriber creation failed", err)
		}
		steps = append(steps, "account")
		subscriberID = created.Subscriber.ID
	}

	if k.cfg.TagID != "" {
		path := "/tags/" + url.PathEscape(k.cfg.TagID) + "/subscribe"
		if err := k.client.doJSON(ctx, http.MethodPost, path, base, nil); err != nil {
			return failure("ConvertKit tagging failed", err)
		}
		steps = append(steps, "tag")
	}

	return integrations.Succeeded("Subscriber added to ConvertKit", map[string]interface{}{
		"subscriber_id": subscriberID,
		"steps":         steps,
	})
}

func (k *ConvertKit) SendTest(ctx context.Context, recipient integrations.TestRecipient) integrations.Result {
	first, last := integrations.SplitName(recipient.Name)
	return k.AddSubscriber(ctx, integrations.Subscriber{Email: recipient.Email, FirstName: first, LastName: last})
}

func (k *ConvertKit) GetProviderInfo(ctx context.Context) integrations.Result {
	forms, err := k.forms(ctx)
	if err != nil {
		return failure("ConvertKit forms lookup failed", err)
	}
	data := map[string]interface{}{
		"provider":   string(integrations.ProviderConvertKit),
		"form_count": len(forms),
	}
	if tags, err := k.tags(ctx); err == nil {
		data["tag_count"] = len(tags)
	}
	return integrations.Succeeded("ConvertKit account information", data)
}

// GetLists returns forms, the closest ConvertKit has to lists.
func (k *ConvertKit) GetLists(ctx context.Context) ([]integrations.List, integrations.Result) {
	forms, err := k.forms(ctx)
	if err != nil {
		return nil, failure("ConvertKit forms lookup failed", err)
	}
	lists := make([]integrations.List, 0, len(forms))
	for _, f := range forms {
		lists = append(lists, integrations.List{ID: strconv.FormatInt(f.ID, 10), Name: f.Name})
	}
	return lists, integrations.Succeeded(fmt.Sprintf("Found %d forms", len(lists)), nil)
}
