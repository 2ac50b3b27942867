package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UpsertCampaignIntegrationParams represents the stored form of an integration configuration
type UpsertCampaignIntegrationParams struct {
	CampaignID   uuid.UUID
	Provider     string
	APIKeyEnc    []byte
	ListID       *string
	FormID       *string
	TagID        *string
	WebhookURL   *string
	SecretKeyEnc []byte
}

const sqlCampaignIntegrationColumns = `
campaign_id, provider, api_key_enc, list_id, form_id, tag_id, webhook_url, secret_key_enc,
is_verified, last_synced, total_synced, success_count, failure_count, created_at, updated_at`

const sqlGetCampaignIntegration = `SELECT ` + sqlCampaignIntegrationColumns + `
FROM campaign_integrations
WHERE campaign_id = $1`

// GetCampaignIntegration retrieves the integration configuration of a campaign
func (s *Store) GetCampaignIntegration(ctx context.Context, campaignID uuid.UUID) (CampaignIntegration, error) {
	var integration CampaignIntegration
	err := s.db.GetContext(ctx, &integration, sqlGetCampaignIntegration, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignIntegration{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign integration", err)
		return CampaignIntegration{}, fmt.Errorf("failed to get campaign integration: %w", err)
	}
	return integration, nil
}

// Verification survives an update only when the provider and every credential are unchanged.
const sqlUpsertCampaignIntegration = `
INSERT INTO campaign_integrations (campaign_id, provider, api_key_enc, list_id, form_id, tag_id, webhook_url, secret_key_enc)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (campaign_id) DO UPDATE SET
    provider = EXCLUDED.provider,
    api_key_enc = EXCLUDED.api_key_enc,
    list_id = EXCLUDED.list_id,
    form_id = EXCLUDED.form_id,
    tag_id = EXCLUDED.tag_id,
    webhook_url = EXCLUDED.webhook_url,
    secret_key_enc = EXCLUDED.secret_key_enc,
    is_verified = campaign_integrations.is_verified
        AND campaign_integrations.provider = EXCLUDED.provider
        AND campaign_integrations.api_key_enc IS NOT DISTINCT FROM EXCLUDED.api_key_enc
        AND campaign_integrations.list_id IS NOT DISTINCT FROM EXCLUDED.list_id
        AND campaign_integrations.form_id IS NOT DISTINCT FROM EXCLUDED.form_id
        AND campaign_integrations.tag_id IS NOT DISTINCT FROM EXCLUDED.tag_id
        AND campaign_integrations.webhook_url IS NOT DISTINCT FROM EXCLUDED.webhook_url
        AND campaign_integrations.secret_key_enc IS NOT DISTINCT FROM EXCLUDED.secret_key_enc,
    updated_at = NOW()
RETURNING` + sqlCampaignIntegrationColumns

// UpsertCampaignIntegration creates or replaces a campaign's integration configuration.
// Sync stats are kept across updates.
func (s *Store) UpsertCampaignIntegration(ctx context.Context, params UpsertCampaignIntegrationParams) (CampaignIntegration, error) {
	var integration CampaignIntegration
	err := s.db.GetContext(ctx, &integration, sqlUpsertCampaignIntegration,
		params.CampaignID,
		params.Provider,
		params.APIKeyEnc,
		params.ListID,
		params.FormID,
		params.TagID,
		params.WebhookURL,
		params.SecretKeyEnc)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert campaign integration", err)
		return CampaignIntegration{}, fmt.Errorf("failed to upsert campaign integration: %w", err)
	}
	return integration, nil
}

// Matches only while the provider and credentials are the ones that were verified.
const sqlSetCampaignIntegrationVerified = `
UPDATE campaign_integrations SET is_verified = $2, updated_at = NOW()
WHERE campaign_id = $1
    AND provider = $3
    AND api_key_enc IS NOT DISTINCT FROM $4
    AND list_id IS NOT DISTINCT FROM $5
    AND form_id IS NOT DISTINCT FROM $6
    AND tag_id IS NOT DISTINCT FROM $7
    AND webhook_url IS NOT DISTINCT FROM $8
    AND secret_key_enc IS NOT DISTINCT FROM $9
`

// SetCampaignIntegrationVerified records the verify outcome for the configuration in
// verified. ErrConflict means the configuration was changed or removed meanwhile.
func (s *Store) SetCampaignIntegrationVerified(ctx context.Context, verified CampaignIntegration, ok bool) error {
	res, err := s.db.ExecContext(ctx, sqlSetCampaignIntegrationVerified,
		verified.CampaignID,
		ok,
		verified.Provider,
		verified.APIKeyEnc,
		verified.ListID,
		verified.FormID,
		verified.TagID,
		verified.WebhookURL,
		verified.SecretKeyEnc)
	if err != nil {
		s.logger.Error(ctx, "failed to set campaign integration verified", err)
		return fmt.Errorf("failed to set campaign integration verified: %w", err)
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

const sqlRecordIntegrationSync = `
UPDATE campaign_integrations SET
    total_synced = total_synced + 1,
    success_count = success_count + CASE WHEN $2 THEN 1 ELSE 0 END,
    failure_count = failure_count + CASE WHEN $2 THEN 0 ELSE 1 END,
    last_synced = NOW(),
    updated_at = NOW()
WHERE campaign_id = $1
`

// RecordIntegrationSync counts one sync attempt. The counters are incremented in place.
func (s *Store) RecordIntegrationSync(ctx context.Context, campaignID uuid.UUID, success bool) error {
	return s.execCampaignIntegration(ctx, "record integration sync", sqlRecordIntegrationSync, campaignID, success)
}

const sqlResetIntegrationStats = `
UPDATE campaign_integrations SET
    total_synced = 0, success_count = 0, failure_count = 0, last_synced = NULL, updated_at = NOW()
WHERE campaign_id = $1
`

func (s *Store) ResetIntegrationStats(ctx context.Context, campaignID uuid.UUID) error {
	return s.execCampaignIntegration(ctx, "reset integration stats", sqlResetIntegrationStats, campaignID)
}

func (s *Store) execCampaignIntegration(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to "+op, err)
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
