// Package leaderboard keeps a per-campaign ranking of entry points in Redis.
package leaderboard

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=leaderboard

import (
	"context"
	"errors"
	"fmt"

	"giveaway-server/internal/clients/redis"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/google/uuid"
	redisLib "github.com/redis/go-redis/v9"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrUnavailable    = errors.New("leaderboard is unavailable")
	ErrEntryNotRanked = errors.New("entry is not on the leaderboard")
)

// EntrySource loads a campaign's entries to rebuild a missing leaderboard
type EntrySource interface {
	GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Entry, error)
}

// Service ranks entries by points using one sorted set per campaign
type Service struct {
	redis   *redis.Client
	entries EntrySource
	logger  *observability.Logger
}

// Position is one row of the leaderboard
type Position struct {
	EntryID uuid.UUID `json:"entry_id"`
	Points  int       `json:"points"`
	Rank    int64     `json:"rank"`
}

// New creates a leaderboard service. entries may be nil, which disables rebuilds.
func New(redis *redis.Client, entries EntrySource, logger *observability.Logger) *Service {
	return &Service{
		redis:   redis,
		entries: entries,
		logger:  logger,
	}
}

// Key format: lb:{campaign_id}
func buildKey(campaignID uuid.UUID) string {
	return fmt.Sprintf("lb:%s", campaignID)
}

// SetPoints sets an entry's absolute points. A missing leaderboard is rebuilt
// from the database first so a write never leaves a partial ranking behind.
func (s *Service) SetPoints(ctx context.Context, campaignID, entryID uuid.UUID, points int) error {
	if !s.redis.IsEnabled() {
		return ErrUnavailable
	}
	if err := s.ensureBuilt(ctx, campaignID); err != nil {
		return err
	}
	err := s.redis.ZAdd(ctx, buildKey(campaignID), redisLib.Z{
		Score:  float64(points),
		Member: entryID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to set leaderboard points: %w", err)
	}
	return nil
}

// Top returns the highest scoring entries, best first. A missing leaderboard is
// rebuilt from the database, which covers Redis restarts and evictions.
func (s *Service) Top(ctx context.Context, campaignID uuid.UUID, limit int) ([]Position, error) {
	if !s.redis.IsEnabled() {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if err := s.ensureBuilt(ctx, campaignID); err != nil {
		return nil, err
	}

	key := buildKey(campaignID)
	members, err := s.redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
	if err != nil {
		s.logger.Error(ctx, "failed to read leaderboard", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	positions := make([]Position, 0, len(members))
	for i, z := range members {
		member, _ := z.Member.(string)
		entryID, err := uuid.Parse(member)
		if err != nil {
			s.logger.Warn(ctx, fmt.Sprintf("skipping malformed leaderboard member %q", member))
			continue
		}
		positions = append(positions, Position{
			EntryID: entryID,
			Points:  int(z.Score),
			Rank:    int64(i) + 1,
		})
	}
	return positions, nil
}

// Rank returns an entry's 1-indexed position
func (s *Service) Rank(ctx context.Context, campaignID, entryID uuid.UUID) (Position, error) {
	if !s.redis.IsEnabled() {
		return Position{}, ErrUnavailable
	}
	if err := s.ensureBuilt(ctx, campaignID); err != nil {
		return Position{}, err
	}
	key := buildKey(campaignID)

	rank, err := s.redis.ZRevRank(ctx, key, entryID.String())
	if errors.Is(err, redisLib.Nil) {
		return Position{}, ErrEntryNotRanked
	}
	if err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	score, err := s.redis.ZScore(ctx, key, entryID.String())
	if err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Position{EntryID: entryID, Points: int(score), Rank: rank + 1}, nil
}

func (s *Service) ensureBuilt(ctx context.Context, campaignID uuid.UUID) error {
	exists, err := s.redis.Exists(ctx, buildKey(campaignID))
	if err != nil {
		s.logger.Error(ctx, "failed to check leaderboard", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if exists {
		return nil
	}
	return s.Rebuild(ctx, campaignID)
}

// Rebuild loads every entry's points from the database into the leaderboard.
func (s *Service) Rebuild(ctx context.Context, campaignID uuid.UUID) error {
	if s.entries == nil {
		return nil
	}
	entries, err := s.entries.GetEntriesByCampaign(ctx, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to load entries for leaderboard rebuild", err)
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	members := make([]redisLib.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redisLib.Z{Score: float64(e.Points), Member: e.ID.String()})
	}
	if err := s.redis.ZAdd(ctx, buildKey(campaignID), members...); err != nil {
		s.logger.Error(ctx, "failed to rebuild leaderboard", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	s.logger.Info(ctx, fmt.Sprintf("rebuilt leaderboard with %d entries", len(members)))
	return nil
}
