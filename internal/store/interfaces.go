package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Close() error

	// Campaign operations
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error)
	RecordCampaignWinners(ctx context.Context, campaignID uuid.UUID, winners CampaignWinners, now time.Time) error

	// Entry operations
	CreateEntry(ctx context.Context, params CreateEntryParams) (Entry, error)
	GetEntryByID(ctx context.Context, entryID uuid.UUID) (Entry, error)
	GetEntryByEmail(ctx context.Context, campaignID uuid.UUID, email string) (Entry, error)
	GetEntryByReferralCode(ctx context.Context, referralCode string) (Entry, error)
	GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Entry, error)
	ListEntriesByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]Entry, error)
	CountEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	GetEntryActions(ctx context.Context, entryID uuid.UUID) ([]EntryAction, error)
	CompleteEntryAction(ctx context.Context, entryID uuid.UUID, actionType, platform string, points int) (CompleteActionResult, error)
	MarkCouponRevealed(ctx context.Context, entryID uuid.UUID) (bool, error)
	GetEntryStats(ctx context.Context, campaignID uuid.UUID) (EntryStats, error)

	// Campaign integration operations
	GetCampaignIntegration(ctx context.Context, campaignID uuid.UUID) (CampaignIntegration, error)
	UpsertCampaignIntegration(ctx context.Context, params UpsertCampaignIntegrationParams) (CampaignIntegration, error)
	SetCampaignIntegrationVerified(ctx context.Context, verified CampaignIntegration, ok bool) error
	RecordIntegrationSync(ctx context.Context, campaignID uuid.UUID, success bool) error
	ResetIntegrationStats(ctx context.Context, campaignID uuid.UUID) error

	// User operations
	GetUserPlan(ctx context.Context, userID uuid.UUID) (string, error)
	UpsertUserEmailService(ctx context.Context, params UpsertUserEmailServiceParams) (UserEmailService, error)
	GetUserEmailServices(ctx context.Context, userID uuid.UUID) ([]UserEmailService, error)
	DeleteUserEmailService(ctx context.Context, userID uuid.UUID, provider string) error
}

var _ Storer = (*Store)(nil)
