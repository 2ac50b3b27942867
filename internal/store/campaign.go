package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sqlCampaignColumns = `
id, owner_id, name, status, start_date, end_date, num_winners, entry_options, winners,
coupon_code, total_entries, total_referrals, created_at, updated_at`

const sqlGetCampaignByID = `SELECT ` + sqlCampaignColumns + `
FROM campaigns
WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

// The winners column doubles as the selection lock: the update only lands while it
// is still empty and the campaign is eligible at "now".
const sqlRecordCampaignWinners = `
UPDATE campaigns
SET winners = $2, status = 'completed', updated_at = NOW()
WHERE id = $1
  AND (winners IS NULL OR jsonb_array_length(winners) = 0)
  AND (status = 'completed' OR (status = 'active' AND end_date IS NOT NULL AND end_date < $3))
`

// RecordCampaignWinners stores the winners and completes the campaign in one
// compare-and-set update. ErrConflict means another selection already won.
func (s *Store) RecordCampaignWinners(ctx context.Context, campaignID uuid.UUID, winners CampaignWinners, now time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlRecordCampaignWinners, campaignID, winners, now)
	if err != nil {
		s.logger.Error(ctx, "failed to record campaign winners", err)
		return fmt.Errorf("failed to record campaign winners: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrConflict
	}
	return nil
}
