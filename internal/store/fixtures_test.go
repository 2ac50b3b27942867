package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures creates rows for database integration tests.
// Every factory fails the test on error.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CreateUser inserts an organiser on the given plan.
func (f *Fixtures) CreateUser(plan string) uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	err := f.testDB.db.GetContext(f.ctx, &id,
		`INSERT INTO users (email, plan) VALUES ($1, $2) RETURNING id`,
		uuid.NewString()+"@example.com", plan)
	require.NoError(f.t, err, "failed to create test user")
	return id
}

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Status     string
	EndDate    *time.Time
	NumWinners int
	Options    EntryOptions
	CouponCode *string
}

func DefaultCampaignOpts() CampaignOpts {
	return CampaignOpts{
		Status:     CampaignStatusActive,
		NumWinners: 1,
		Options: EntryOptions{
			Referral: ReferralOption{Enabled: true, PointsPerReferral: 2},
		},
	}
}

// CreateCampaign inserts a campaign owned by ownerID.
func (f *Fixtures) CreateCampaign(ownerID uuid.UUID, opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := DefaultCampaignOpts()
	for _, fn := range opts {
		fn(&o)
	}

	var id uuid.UUID
	err := f.testDB.db.GetContext(f.ctx, &id, `
		INSERT INTO campaigns (owner_id, name, status, end_date, num_winners, entry_options, coupon_code)
		VALUES ($1, 'Test Giveaway', $2, $3, $4, $5, $6)
		RETURNING id`,
		ownerID, o.Status, o.EndDate, o.NumWinners, o.Options, o.CouponCode)
	require.NoError(f.t, err, "failed to create test campaign")

	campaign, err := f.testDB.Store.GetCampaignByID(f.ctx, id)
	require.NoError(f.t, err)
	return campaign
}

// CreateEntry enters email into the campaign through the store.
func (f *Fixtures) CreateEntry(campaignID uuid.UUID, email string, referral *ReferralReward) Entry {
	f.t.Helper()
	params := CreateEntryParams{
		CampaignID:   campaignID,
		Email:        email,
		EntryMethod:  EntryMethodEmail,
		ReferralCode: uuid.NewString()[:8],
		Referral:     referral,
	}
	if referral != nil {
		params.EntryMethod = EntryMethodReferral
		params.ReferredBy = &referral.ReferrerID
	}
	entry, err := f.testDB.Store.CreateEntry(f.ctx, params)
	require.NoError(f.t, err, "failed to create test entry")
	return entry
}
