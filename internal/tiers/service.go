package tiers

import (
	"context"
	"errors"

	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/google/uuid"
)

// TierStore defines the database operations required by TierService
type TierStore interface {
	GetUserPlan(ctx context.Context, userID uuid.UUID) (string, error)
}

// TierService resolves an organiser's plan into limits
type TierService struct {
	store  TierStore
	logger *observability.Logger
}

// New creates a new TierService
func New(store TierStore, logger *observability.Logger) *TierService {
	return &TierService{
		store:  store,
		logger: logger,
	}
}

// TierInfo represents the tier of an organiser
type TierInfo struct {
	TierName    string `json:"tier_name"`
	DisplayName string `json:"display_name"`
	EntryLimit  *int   `json:"entry_limit"`
}

// GetTierInfoByUserID retrieves the tier of an organiser. Organisers without a
// users row are treated as free.
func (s *TierService) GetTierInfoByUserID(ctx context.Context, userID uuid.UUID) (TierInfo, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_tier_info_by_user"},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	plan, err := s.store.GetUserPlan(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Error(ctx, "failed to get user plan", err)
		return TierInfo{}, err
	}

	tier := GetTierForPlan(plan)
	return TierInfo{
		TierName:    string(tier),
		DisplayName: GetTierDisplayName(tier),
		EntryLimit:  EntryLimit(tier),
	}, nil
}

// CanAcceptEntry reports whether a campaign owned by ownerID is still under its
// tier's entry cap.
func (s *TierService) CanAcceptEntry(ctx context.Context, ownerID uuid.UUID, currentEntries int) (bool, error) {
	info, err := s.GetTierInfoByUserID(ctx, ownerID)
	if err != nil {
		return false, err
	}
	if info.EntryLimit == nil {
		return true, nil
	}
	return currentEntries < *info.EntryLimit, nil
}
