package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpsertUserEmailServiceParams represents parameters for connecting an email service
type UpsertUserEmailServiceParams struct {
	UserID      uuid.UUID
	Provider    string
	APIKeyEnc   []byte
	AccountInfo JSONB
}

const sqlUserEmailServiceColumns = `
user_id, provider, api_key_enc, connected, connected_at, account_info, created_at, updated_at`

const sqlUpsertUserEmailService = `
INSERT INTO user_email_services (user_id, provider, api_key_enc, connected, connected_at, account_info)
VALUES ($1, $2, $3, true, NOW(), $4)
ON CONFLICT (user_id, provider) DO UPDATE SET
    api_key_enc = EXCLUDED.api_key_enc,
    connected = true,
    connected_at = NOW(),
    account_info = EXCLUDED.account_info,
    updated_at = NOW()
RETURNING` + sqlUserEmailServiceColumns

// UpsertUserEmailService stores a connected provider account for a user
func (s *Store) UpsertUserEmailService(ctx context.Context, params UpsertUserEmailServiceParams) (UserEmailService, error) {
	var service UserEmailService
	err := s.db.GetContext(ctx, &service, sqlUpsertUserEmailService,
		params.UserID,
		params.Provider,
		params.APIKeyEnc,
		params.AccountInfo)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert user email service", err)
		return UserEmailService{}, fmt.Errorf("failed to upsert user email service: %w", err)
	}
	return service, nil
}

const sqlGetUserEmailServices = `SELECT ` + sqlUserEmailServiceColumns + `
FROM user_email_services
WHERE user_id = $1
ORDER BY provider ASC`

// GetUserEmailServices retrieves every provider account connected by a user
func (s *Store) GetUserEmailServices(ctx context.Context, userID uuid.UUID) ([]UserEmailService, error) {
	var services []UserEmailService
	if err := s.db.SelectContext(ctx, &services, sqlGetUserEmailServices, userID); err != nil {
		s.logger.Error(ctx, "failed to get user email services", err)
		return nil, fmt.Errorf("failed to get user email services: %w", err)
	}
	return services, nil
}

const sqlDeleteUserEmailService = `
DELETE FROM user_email_services WHERE user_id = $1 AND provider = $2
`

func (s *Store) DeleteUserEmailService(ctx context.Context, userID uuid.UUID, provider string) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteUserEmailService, userID, provider)
	if err != nil {
		s.logger.Error(ctx, "failed to delete user email service", err)
		return fmt.Errorf("failed to delete user email service: %w", err)
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
