package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlSelectUserPlan = `
SELECT plan
FROM users
WHERE id = $1`

// GetUserPlan returns the billing plan name of an organiser
func (s *Store) GetUserPlan(ctx context.Context, userID uuid.UUID) (string, error) {
	var plan string
	err := s.db.GetContext(ctx, &plan, sqlSelectUserPlan, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user plan", err)
		return "", fmt.Errorf("failed to get user plan: %w", err)
	}
	return plan, nil
}
