package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReferralReward credits the referring entry inside the entry creation transaction.
type ReferralReward struct {
	ReferrerID uuid.UUID
	Points     int
}

// CreateEntryParams represents parameters for creating an entry
type CreateEntryParams struct {
	CampaignID      uuid.UUID
	Email           string
	Name            *string
	NewsletterOptIn bool
	IPAddress       *string
	EntryMethod     string
	ReferredBy      *uuid.UUID
	ReferralCode    string
	// Referral is nil when the referrer gets no points (no referrer or referrals disabled).
	Referral *ReferralReward
}

const sqlEntryColumns = `
id, campaign_id, email, name, newsletter_opt_in, ip_address, entry_method, referred_by,
referral_code, points, coupon_revealed, created_at, updated_at`

const sqlCreateEntry = `
INSERT INTO entries (campaign_id, email, name, newsletter_opt_in, ip_address, entry_method, referred_by, referral_code, points)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + sqlEntryColumns

const sqlInsertCompletedAction = `
INSERT INTO entry_actions (entry_id, type, platform, completed, points, completed_at)
VALUES ($1, $2, '', true, $3, NOW())
RETURNING id, entry_id, type, platform, completed, points, completed_at, created_at
`

const sqlIncrementCampaignEntries = `
UPDATE campaigns SET total_entries = total_entries + 1, updated_at = NOW() WHERE id = $1
`

const sqlCreditReferrer = `
UPDATE entries SET points = points + $2, updated_at = NOW()
WHERE id = $1 AND campaign_id = $3
RETURNING points
`

const sqlIncrementCampaignReferrals = `
UPDATE campaigns SET total_referrals = total_referrals + 1, updated_at = NOW() WHERE id = $1
`

// CreateEntry inserts the entry with its signup action and, when a referral reward
// is given, credits the referrer. Everything commits or nothing does.
func (s *Store) CreateEntry(ctx context.Context, params CreateEntryParams) (Entry, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var entry Entry
	err = tx.GetContext(ctx, &entry, sqlCreateEntry,
		params.CampaignID,
		params.Email,
		params.Name,
		params.NewsletterOptIn,
		params.IPAddress,
		params.EntryMethod,
		params.ReferredBy,
		params.ReferralCode,
		SignupPoints)
	if err != nil {
		if isUniqueViolation(err) {
			return Entry{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create entry", err)
		return Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	var signup EntryAction
	if err := tx.GetContext(ctx, &signup, sqlInsertCompletedAction, entry.ID, ActionTypeEmailSignup, SignupPoints); err != nil {
		s.logger.Error(ctx, "failed to create signup action", err)
		return Entry{}, fmt.Errorf("failed to create signup action: %w", err)
	}
	entry.Actions = []EntryAction{signup}

	if _, err := tx.ExecContext(ctx, sqlIncrementCampaignEntries, params.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to increment campaign entries", err)
		return Entry{}, fmt.Errorf("failed to increment campaign entries: %w", err)
	}

	if params.Referral != nil {
		points, err := s.creditReferrer(ctx, tx, params.CampaignID, *params.Referral)
		if err != nil {
			return Entry{}, err
		}
		entry.ReferrerPoints = points
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entry, nil
}

func (s *Store) creditReferrer(ctx context.Context, tx *sqlx.Tx, campaignID uuid.UUID, reward ReferralReward) (int, error) {
	var action EntryAction
	if err := tx.GetContext(ctx, &action, sqlInsertCompletedAction, reward.ReferrerID, ActionTypeReferral, reward.Points); err != nil {
		s.logger.Error(ctx, "failed to append referral action", err)
		return 0, fmt.Errorf("failed to append referral action: %w", err)
	}

	var points int
	if err := tx.GetContext(ctx, &points, sqlCreditReferrer, reward.ReferrerID, reward.Points, campaignID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		s.logger.Error(ctx, "failed to credit referrer", err)
		return 0, fmt.Errorf("failed to credit referrer: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlIncrementCampaignReferrals, campaignID); err != nil {
		s.logger.Error(ctx, "failed to increment campaign referrals", err)
		return 0, fmt.Errorf("failed to increment campaign referrals: %w", err)
	}
	return points, nil
}

const sqlGetEntryByID = `SELECT ` + sqlEntryColumns + ` FROM entries WHERE id = $1`

// GetEntryByID retrieves an entry by ID
func (s *Store) GetEntryByID(ctx context.Context, entryID uuid.UUID) (Entry, error) {
	return s.getEntry(ctx, "get entry by id", sqlGetEntryByID, entryID)
}

const sqlGetEntryByEmail = `SELECT ` + sqlEntryColumns + ` FROM entries WHERE campaign_id = $1 AND email = $2`

// GetEntryByEmail retrieves the entry of an email address in a campaign
func (s *Store) GetEntryByEmail(ctx context.Context, campaignID uuid.UUID, email string) (Entry, error) {
	return s.getEntry(ctx, "get entry by email", sqlGetEntryByEmail, campaignID, email)
}

const sqlGetEntryByReferralCode = `SELECT ` + sqlEntryColumns + ` FROM entries WHERE referral_code = $1`

// GetEntryByReferralCode retrieves an entry by its referral code, in any campaign
func (s *Store) GetEntryByReferralCode(ctx context.Context, referralCode string) (Entry, error) {
	return s.getEntry(ctx, "get entry by referral code", sqlGetEntryByReferralCode, referralCode)
}

func (s *Store) getEntry(ctx context.Context, op, query string, args ...interface{}) (Entry, error) {
	var entry Entry
	err := s.db.GetContext(ctx, &entry, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to "+op, err)
		return Entry{}, fmt.Errorf("failed to %s: %w", op, err)
	}
	return entry, nil
}

const sqlGetEntriesByCampaign = `SELECT ` + sqlEntryColumns + `
FROM entries
WHERE campaign_id = $1
ORDER BY created_at ASC, id ASC`

// GetEntriesByCampaign retrieves every entry of a campaign in signup order
func (s *Store) GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	if err := s.db.SelectContext(ctx, &entries, sqlGetEntriesByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to get entries by campaign", err)
		return nil, fmt.Errorf("failed to get entries by campaign: %w", err)
	}
	return entries, nil
}

const sqlListEntriesByCampaign = `SELECT ` + sqlEntryColumns + `
FROM entries
WHERE campaign_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

// ListEntriesByCampaign retrieves one page of entries, newest first
func (s *Store) ListEntriesByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]Entry, error) {
	var entries []Entry
	if err := s.db.SelectContext(ctx, &entries, sqlListEntriesByCampaign, campaignID, limit, offset); err != nil {
		s.logger.Error(ctx, "failed to list entries by campaign", err)
		return nil, fmt.Errorf("failed to list entries by campaign: %w", err)
	}
	return entries, nil
}

const sqlCountEntriesByCampaign = `SELECT COUNT(*) FROM entries WHERE campaign_id = $1`

func (s *Store) CountEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountEntriesByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to count entries by campaign", err)
		return 0, fmt.Errorf("failed to count entries by campaign: %w", err)
	}
	return count, nil
}

const sqlGetEntryActions = `
SELECT id, entry_id, type, platform, completed, points, completed_at, created_at
FROM entry_actions
WHERE entry_id = $1
ORDER BY created_at ASC, id ASC`

// GetEntryActions retrieves the action log of an entry in the order actions were recorded
func (s *Store) GetEntryActions(ctx context.Context, entryID uuid.UUID) ([]EntryAction, error) {
	var actions []EntryAction
	if err := s.db.SelectContext(ctx, &actions, sqlGetEntryActions, entryID); err != nil {
		s.logger.Error(ctx, "failed to get entry actions", err)
		return nil, fmt.Errorf("failed to get entry actions: %w", err)
	}
	return actions, nil
}

// CompleteActionResult reports the entry's point total after CompleteEntryAction.
type CompleteActionResult struct {
	Points           int
	AlreadyCompleted bool
}

// The conditional DO UPDATE returns no row when the action was already completed,
// which is what makes completion idempotent under concurrent calls.
const sqlUpsertCompletedAction = `
INSERT INTO entry_actions (entry_id, type, platform, completed, points, completed_at)
VALUES ($1, $2, $3, true, $4, NOW())
ON CONFLICT (entry_id, type, platform) WHERE type <> 'referral'
DO UPDATE SET completed = true, points = EXCLUDED.points, completed_at = EXCLUDED.completed_at
WHERE entry_actions.completed = false
RETURNING id
`

const sqlAddEntryPoints = `
UPDATE entries SET points = points + $2, updated_at = NOW()
WHERE id = $1
RETURNING points
`

const sqlGetEntryPoints = `SELECT points FROM entries WHERE id = $1`

// CompleteEntryAction marks (type, platform) completed on the entry and adds its
// points exactly once. Completing an already completed action changes nothing.
func (s *Store) CompleteEntryAction(ctx context.Context, entryID uuid.UUID, actionType, platform string, points int) (CompleteActionResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return CompleteActionResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var actionID uuid.UUID
	err = tx.GetContext(ctx, &actionID, sqlUpsertCompletedAction, entryID, actionType, platform, points)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to upsert entry action", err)
		return CompleteActionResult{}, fmt.Errorf("failed to upsert entry action: %w", err)
	}

	result := CompleteActionResult{AlreadyCompleted: errors.Is(err, sql.ErrNoRows)}
	query, args := sqlAddEntryPoints, []interface{}{entryID, points}
	if result.AlreadyCompleted {
		query, args = sqlGetEntryPoints, []interface{}{entryID}
	}
	if err := tx.GetContext(ctx, &result.Points, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CompleteActionResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update entry points", err)
		return CompleteActionResult{}, fmt.Errorf("failed to update entry points: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return CompleteActionResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

const sqlMarkCouponRevealed = `
UPDATE entries SET coupon_revealed = true, updated_at = NOW()
WHERE id = $1 AND coupon_revealed = false
`

// MarkCouponRevealed sets coupon_revealed once. It reports whether this call flipped it.
func (s *Store) MarkCouponRevealed(ctx context.Context, entryID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlMarkCouponRevealed, entryID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark coupon revealed", err)
		return false, fmt.Errorf("failed to mark coupon revealed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlGetEntryStats = `
SELECT
    COUNT(*)::int AS total_entries,
    COUNT(*) FILTER (WHERE entry_method = 'referral')::int AS referral_entries,
    COUNT(*) FILTER (WHERE newsletter_opt_in)::int AS newsletter_opt_ins,
    COALESCE(SUM(points), 0)::int AS total_points,
    COUNT(*) FILTER (WHERE coupon_revealed)::int AS coupons_revealed
FROM entries
WHERE campaign_id = $1`

func (s *Store) GetEntryStats(ctx context.Context, campaignID uuid.UUID) (EntryStats, error) {
	var stats EntryStats
	if err := s.db.GetContext(ctx, &stats, sqlGetEntryStats, campaignID); err != nil {
		s.logger.Error(ctx, "failed to get entry stats", err)
		return EntryStats{}, fmt.Errorf("failed to get entry stats: %w", err)
	}
	return stats, nil
}
