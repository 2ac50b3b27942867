package processor

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
	// MaxPage keeps (page-1)*limit well inside an int.
	MaxPage = 1 << 20
)

// ListEntriesResponse is one page of a campaign's entries
type ListEntriesResponse struct {
	Entries    []store.Entry `json:"entries"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// ListEntries returns entries of a campaign the caller owns, newest first.
func (p *EntryProcessor) ListEntries(ctx context.Context, ownerID, campaignID uuid.UUID, page, limit int) (ListEntriesResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if _, err := p.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return ListEntriesResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	entries, err := p.store.ListEntriesByCampaign(ctx, campaignID, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list entries", err)
		return ListEntriesResponse{}, err
	}
	total, err := p.store.CountEntriesByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count entries", err)
		return ListEntriesResponse{}, err
	}
	if entries == nil {
		entries = []store.Entry{}
	}

	return ListEntriesResponse{
		Entries:    entries,
		TotalCount: total,
		Page:       page,
		PageSize:   limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

var entriesCSVHeader = []string{"Email", "Name", "Newsletter Opt-in", "Entry Method", "Points", "Entry Date"}

// ExportEntriesCSV writes every entry of the campaign as CSV in signup order.
func (p *EntryProcessor) ExportEntriesCSV(ctx context.Context, ownerID, campaignID uuid.UUID, w io.Writer) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if _, err := p.verifyCampaignAccess(ctx, ownerID, campaignID); err != nil {
		return err
	}

	entries, err := p.store.GetEntriesByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get entries for export", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(entriesCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		name := ""
		if e.Name != nil {
			name = *e.Name
		}
		optIn := "No"
		if e.NewsletterOptIn {
			optIn = "Yes"
		}
		row := []string{
			e.Email,
			name,
			optIn,
			e.EntryMethod,
			strconv.Itoa(e.Points),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CampaignStats summarises a campaign's entries
type CampaignStats struct {
	store.EntryStats
	TotalReferrals  int  `json:"total_referrals"`
	NumWinners      int  `json:"num_winners"`
	WinnersSelected bool `json:"winners_selected"`
}

func (p *EntryProcessor) GetStats(ctx context.Context, ownerID, campaignID uuid.UUID) (CampaignStats, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.verifyCampaignAccess(ctx, ownerID, campaignID)
	if err != nil {
		return CampaignStats{}, err
	}

	stats, err := p.store.GetEntryStats(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get entry stats", err)
		return CampaignStats{}, err
	}

	return CampaignStats{
		EntryStats:      stats,
		TotalReferrals:  campaign.TotalReferrals,
		NumWinners:      campaign.NumWinners,
		WinnersSelected: campaign.HasWinners(),
	}, nil
}
