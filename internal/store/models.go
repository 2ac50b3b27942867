package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONB is a free-form jsonb column.
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*j = make(JSONB)
		return nil
	}
	result := make(JSONB)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for jsonb column")
	}
}

// ActionOption configures one bonus action on a campaign.
type ActionOption struct {
	Enabled bool   `json:"enabled"`
	Points  int    `json:"points,omitempty"`
	URL     string `json:"url,omitempty"`
}

// PointValue is the number of points the action grants. Unset means 1.
func (o ActionOption) PointValue() int {
	if o.Points <= 0 {
		return 1
	}
	return o.Points
}

type ReferralOption struct {
	Enabled           bool `json:"enabled"`
	PointsPerReferral int  `json:"points_per_referral,omitempty"`
}

// Points granted to the referrer per successful referral. Unset means 1.
func (o ReferralOption) Points() int {
	if o.PointsPerReferral <= 0 {
		return 1
	}
	return o.PointsPerReferral
}

// EntryOptions is the campaigns.entry_options column. Social actions are keyed by platform.
type EntryOptions struct {
	VisitURL     ActionOption            `json:"visit_url"`
	SocialFollow map[string]ActionOption `json:"social_follow,omitempty"`
	SocialShare  map[string]ActionOption `json:"social_share,omitempty"`
	Referral     ReferralOption          `json:"referral"`
}

func (o EntryOptions) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *EntryOptions) Scan(value interface{}) error {
	if value == nil {
		*o = EntryOptions{}
		return nil
	}
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*o = EntryOptions{}
		return nil
	}
	return json.Unmarshal(raw, o)
}

// CampaignWinner is one selected winner, snapshotted at selection time.
type CampaignWinner struct {
	EntryID uuid.UUID `json:"entry_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Points  int       `json:"points"`
}

// CampaignWinners is the campaigns.winners column. NULL and [] both mean "not drawn yet".
type CampaignWinners []CampaignWinner

func (w CampaignWinners) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

func (w *CampaignWinners) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	raw, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*w = nil
		return nil
	}
	var winners []CampaignWinner
	if err := json.Unmarshal(raw, &winners); err != nil {
		return fmt.Errorf("failed to decode winners: %w", err)
	}
	*w = winners
	return nil
}

// Campaign holds the fields of a giveaway campaign used by entry accounting and winner selection.
type Campaign struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	OwnerID        uuid.UUID       `db:"owner_id" json:"owner_id"`
	Name           string          `db:"name" json:"name"`
	Status         string          `db:"status" json:"status"`
	StartDate      *time.Time      `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time      `db:"end_date" json:"end_date,omitempty"`
	NumWinners     int             `db:"num_winners" json:"num_winners"`
	EntryOptions   EntryOptions    `db:"entry_options" json:"entry_options"`
	Winners        CampaignWinners `db:"winners" json:"winners"`
	CouponCode     *string         `db:"coupon_code" json:"-"`
	TotalEntries   int             `db:"total_entries" json:"total_entries"`
	TotalReferrals int             `db:"total_referrals" json:"total_referrals"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// HasWinners reports whether winners were already drawn.
func (c Campaign) HasWinners() bool {
	return len(c.Winners) > 0
}

// Entry is one participant's record in one campaign.
type Entry struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	CampaignID      uuid.UUID     `db:"campaign_id" json:"campaign_id"`
	Email           string        `db:"email" json:"email"`
	Name            *string       `db:"name" json:"name,omitempty"`
	NewsletterOptIn bool          `db:"newsletter_opt_in" json:"newsletter_opt_in"`
	IPAddress       *string       `db:"ip_address" json:"-"`
	EntryMethod     string        `db:"entry_method" json:"entry_method"`
	ReferredBy      *uuid.UUID    `db:"referred_by" json:"referred_by,omitempty"`
	ReferralCode    string        `db:"referral_code" json:"referral_code"`
	Points          int           `db:"points" json:"points"`
	CouponRevealed  bool          `db:"coupon_revealed" json:"coupon_revealed"`
	Actions         []EntryAction `db:"-" json:"actions,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`

	// ReferrerPoints is the referrer's total after a referral credit, set by CreateEntry.
	ReferrerPoints int `db:"-" json:"-"`
}

// EntryAction is one completed (or pending) engagement task on an entry.
type EntryAction struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	EntryID     uuid.UUID  `db:"entry_id" json:"-"`
	Type        string     `db:"type" json:"type"`
	Platform    string     `db:"platform" json:"platform,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	Points      int        `db:"points" json:"points"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// EntryStats aggregates entries of one campaign.
type EntryStats struct {
	TotalEntries     int `db:"total_entries" json:"total_entries"`
	ReferralEntries  int `db:"referral_entries" json:"referral_entries"`
	NewsletterOptIns int `db:"newsletter_opt_ins" json:"newsletter_opt_ins"`
	TotalPoints      int `db:"total_points" json:"total_points"`
	CouponsRevealed  int `db:"coupons_revealed" json:"coupons_revealed"`
}

// CampaignIntegration is the per-campaign email provider configuration. Secrets are stored encrypted.
type CampaignIntegration struct {
	CampaignID   uuid.UUID  `db:"campaign_id"`
	Provider     string     `db:"provider"`
	APIKeyEnc    []byte     `db:"api_key_enc"`
	ListID       *string    `db:"list_id"`
	FormID       *string    `db:"form_id"`
	TagID        *string    `db:"tag_id"`
	WebhookURL   *string    `db:"webhook_url"`
	SecretKeyEnc []byte     `db:"secret_key_enc"`
	IsVerified   bool       `db:"is_verified"`
	LastSynced   *time.Time `db:"last_synced"`
	TotalSynced  int        `db:"total_synced"`
	SuccessCount int        `db:"success_count"`
	FailureCount int        `db:"failure_count"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// UserEmailService is one connected provider account of an organiser.
type UserEmailService struct {
	UserID      uuid.UUID  `db:"user_id" json:"-"`
	Provider    string     `db:"provider" json:"provider"`
	APIKeyEnc   []byte     `db:"api_key_enc" json:"-"`
	Connected   bool       `db:"connected" json:"connected"`
	ConnectedAt *time.Time `db:"connected_at" json:"connected_at,omitempty"`
	AccountInfo JSONB      `db:"account_info" json:"account_info,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
