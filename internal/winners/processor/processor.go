package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"
	"giveaway-server/internal/winners"

	"github.com/google/uuid"
)

// WinnerStore defines the database operations required by WinnerProcessor
type WinnerStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Entry, error)
	RecordCampaignWinners(ctx context.Context, campaignID uuid.UUID, winners store.CampaignWinners, now time.Time) error
}

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrUnauthorized           = errors.New("unauthorized access to campaign")
	ErrCampaignNotEligible    = errors.New("campaign is not eligible for winner selection")
	ErrWinnersAlreadySelected = errors.New("winners have already been selected for this campaign")
	ErrNoEntries              = errors.New("campaign has no entries")
	ErrInsufficientEntries    = errors.New("not enough entries to select winners")
)

type WinnerProcessor struct {
	store     WinnerStore
	logger    *observability.Logger
	now       func() time.Time
	newSource func() (winners.Source, error)
}

func New(store WinnerStore, logger *observability.Logger) WinnerProcessor {
	return WinnerProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
		newSource: func() (winners.Source, error) {
			return winners.NewSource()
		},
	}
}

// SelectWinnersResponse is the result of a successful draw
type SelectWinnersResponse struct {
	Winners []winners.Winner `json:"winners"`
	Message string           `json:"message"`
}

// SelectWinners draws the campaign's winners and completes the campaign.
func (p *WinnerProcessor) SelectWinners(ctx context.Context, ownerID, campaignID uuid.UUID) (SelectWinnersResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.verifyCampaignAccess(ctx, ownerID, campaignID)
	if err != nil {
		return SelectWinnersResponse{}, err
	}

	now := p.now()
	if !eligible(campaign, now) {
		return SelectWinnersResponse{}, notEligibleError(campaign)
	}
	if campaign.HasWinners() {
		return SelectWinnersResponse{}, ErrWinnersAlreadySelected
	}

	entries, err := p.store.GetEntriesByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get entries for winner selection", err)
		return SelectWinnersResponse{}, err
	}
	if len(entries) == 0 {
		return SelectWinnersResponse{}, ErrNoEntries
	}
	if len(entries) < campaign.NumWinners {
		return SelectWinnersResponse{}, fmt.Errorf("%w: campaign has %d entries but %d winners were requested",
			ErrInsufficientEntries, len(entries), campaign.NumWinners)
	}

	src, err := p.newSource()
	if err != nil {
		p.logger.Error(ctx, "failed to create winner source", err)
		return SelectWinnersResponse{}, err
	}
	drawn := winners.Draw(candidatesFromEntries(entries), campaign.NumWinners, src)

	record := make(store.CampaignWinners, len(drawn))
	for i, w := range drawn {
		record[i] = store.CampaignWinner{EntryID: w.EntryID, Email: w.Email, Name: w.Name, Points: w.Points}
	}
	if err := p.store.RecordCampaignWinners(ctx, campaignID, record, now); err != nil {
		if errors.Is(err, store.ErrConflict) {
			p.logger.Info(ctx, "winner selection lost race to a concurrent selection")
			return SelectWinnersResponse{}, ErrWinnersAlreadySelected
		}
		p.logger.Error(ctx, "failed to record campaign winners", err)
		return SelectWinnersResponse{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "winner_count", Value: len(drawn)}), "winners selected")

	return SelectWinnersResponse{
		Winners: drawn,
		Message: fmt.Sprintf("Successfully selected %d winner(s)", len(drawn)),
	}, nil
}

// GetWinners returns the recorded winners of a campaign. Empty until selection ran.
func (p *WinnerProcessor) GetWinners(ctx context.Context, ownerID, campaignID uuid.UUID) ([]winners.Winner, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.verifyCampaignAccess(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}

	result := make([]winners.Winner, len(campaign.Winners))
	for i, w := range campaign.Winners {
		result[i] = winners.Winner{EntryID: w.EntryID, Email: w.Email, Name: w.Name, Points: w.Points}
	}
	return result, nil
}

// ExportWinnersCSV writes the recorded winners as CSV.
func (p *WinnerProcessor) ExportWinnersCSV(ctx context.Context, ownerID, campaignID uuid.UUID, w io.Writer) error {
	list, err := p.GetWinners(ctx, ownerID, campaignID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Email", "Name", "Points"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, winner := range list {
		if err := cw.Write([]string{winner.Email, winner.Name, strconv.Itoa(winner.Points)}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (p *WinnerProcessor) verifyCampaignAccess(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.Campaign{}, ErrUnauthorized
	}
	return campaign, nil
}

// eligible: completed, or active with an end date already passed.
func eligible(campaign store.Campaign, now time.Time) bool {
	switch campaign.Status {
	case store.CampaignStatusCompleted:
		return true
	case store.CampaignStatusActive:
		return campaign.EndDate != nil && now.After(*campaign.EndDate)
	default:
		return false
	}
}

func notEligibleError(campaign store.Campaign) error {
	if campaign.Status == store.CampaignStatusActive {
		if campaign.EndDate == nil {
			return fmt.Errorf("%w: campaign is active and has no end date", ErrCampaignNotEligible)
		}
		return fmt.Errorf("%w: campaign is active until %s", ErrCampaignNotEligible, campaign.EndDate.UTC().Format(time.RFC3339))
	}
	return fmt.Errorf("%w: campaign status is %s", ErrCampaignNotEligible, campaign.Status)
}

func candidatesFromEntries(entries []store.Entry) []winners.Candidate {
	cands := make([]winners.Candidate, len(entries))
	for i, e := range entries {
		name := ""
		if e.Name != nil {
			name = *e.Name
		}
		cands[i] = winners.Candidate{EntryID: e.ID, Email: e.Email, Name: name, Points: e.Points}
	}
	return cands
}
