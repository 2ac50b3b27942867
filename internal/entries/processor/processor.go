package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EntryStore defines the database operations required by EntryProcessor
type EntryStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetEntryByID(ctx context.Context, entryID uuid.UUID) (store.Entry, error)
	GetEntryByEmail(ctx context.Context, campaignID uuid.UUID, email string) (store.Entry, error)
	GetEntryByReferralCode(ctx context.Context, referralCode string) (store.Entry, error)
	CreateEntry(ctx context.Context, params store.CreateEntryParams) (store.Entry, error)
	CompleteEntryAction(ctx context.Context, entryID uuid.UUID, actionType, platform string, points int) (store.CompleteActionResult, error)
	GetEntryActions(ctx context.Context, entryID uuid.UUID) ([]store.EntryAction, error)
	MarkCouponRevealed(ctx context.Context, entryID uuid.UUID) (bool, error)
	GetEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.Entry, error)
	ListEntriesByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]store.Entry, error)
	CountEntriesByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	GetEntryStats(ctx context.Context, campaignID uuid.UUID) (store.EntryStats, error)
}

// EntryLimiter enforces the campaign owner's plan entry cap
type EntryLimiter interface {
	CanAcceptEntry(ctx context.Context, ownerID uuid.UUID, currentEntries int) (bool, error)
}

// EventDispatcher hands newly created entries to the email provider sync pipeline.
// Implementations must not block the caller.
type EventDispatcher interface {
	DispatchEntryCreated(ctx context.Context, campaignID, entryID uuid.UUID)
}

// LeaderboardUpdater mirrors entry points into the campaign leaderboard
type LeaderboardUpdater interface {
	SetPoints(ctx context.Context, campaignID, entryID uuid.UUID, points int) error
}

var (
	ErrInvalidEmail       = errors.New("email must be a valid email address")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignNotActive  = errors.New("campaign is not accepting entries")
	ErrDuplicateEntry     = errors.New("email has already entered this campaign")
	ErrEntryLimitReached  = errors.New("campaign has reached the entry limit of its plan")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrUnauthorized       = errors.New("referral code does not match entry")
	ErrNotOwner           = errors.New("unauthorized access to campaign")
	ErrUnknownActionType  = errors.New("unknown action type")
	ErrActionNotEnabled   = errors.New("action is not enabled for this campaign")
	ErrCouponNotAvailable = errors.New("campaign has no coupon to reveal")
)

const referralCodeBytes = 16

type EntryProcessor struct {
	store       EntryStore
	limiter     EntryLimiter
	events      EventDispatcher
	leaderboard LeaderboardUpdater
	validate    *validator.Validate
	logger      *observability.Logger
}

// New creates an EntryProcessor. events and leaderboard may be nil.
func New(store EntryStore, limiter EntryLimiter, events EventDispatcher, leaderboard LeaderboardUpdater, logger *observability.Logger) EntryProcessor {
	return EntryProcessor{
		store:       store,
		limiter:     limiter,
		events:      events,
		leaderboard: leaderboard,
		validate:    validator.New(),
		logger:      logger,
	}
}

// SubmitEntryRequest represents a public entry submission
type SubmitEntryRequest struct {
	Email           string
	Name            string
	NewsletterOptIn bool
	ReferralCode    string
	IPAddress       string
}

// SubmitEntryResponse carries the created entry, including the entrant's own referral code
type SubmitEntryResponse struct {
	Entry    store.Entry `json:"entry"`
	Referred bool        `json:"referred"`
}

// SubmitEntry creates an entry in an active campaign, crediting the referrer when
// the referral code belongs to the same campaign.
func (p *EntryProcessor) SubmitEntry(ctx context.Context, campaignID uuid.UUID, req SubmitEntryRequest) (SubmitEntryResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "email", Value: email},
	)

	if err := p.validate.Var(email, "required,email,max=320"); err != nil {
		return SubmitEntryResponse{}, ErrInvalidEmail
	}

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SubmitEntryResponse{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return SubmitEntryResponse{}, err
	}
	if campaign.Status != store.CampaignStatusActive {
		return SubmitEntryResponse{}, ErrCampaignNotActive
	}

	existing, err := p.store.GetEntryByEmail(ctx, campaignID, email)
	if err == nil && existing.ID != uuid.Nil {
		return SubmitEntryResponse{}, ErrDuplicateEntry
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check entry existence", err)
		return SubmitEntryResponse{}, err
	}

	if p.limiter != nil {
		ok, err := p.limiter.CanAcceptEntry(ctx, campaign.OwnerID, campaign.TotalEntries)
		if err != nil {
			p.logger.Error(ctx, "failed to check entry limit", err)
			return SubmitEntryResponse{}, err
		}
		if !ok {
			return SubmitEntryResponse{}, ErrEntryLimitReached
		}
	}

	referralCode, err := generateReferralCode()
	if err != nil {
		p.logger.Error(ctx, "failed to generate referral code", err)
		return SubmitEntryResponse{}, err
	}

	params := store.CreateEntryParams{
		CampaignID:      campaignID,
		Email:           email,
		Name:            optionalString(req.Name),
		NewsletterOptIn: req.NewsletterOptIn,
		IPAddress:       optionalString(req.IPAddress),
		EntryMethod:     store.EntryMethodEmail,
		ReferralCode:    referralCode,
	}

	if referrer, ok := p.resolveReferrer(ctx, campaignID, req.ReferralCode); ok {
		params.EntryMethod = store.EntryMethodReferral
		params.ReferredBy = &referrer.ID
		if campaign.EntryOptions.Referral.Enabled {
			params.Referral = &store.ReferralReward{
				ReferrerID: referrer.ID,
				Points:     campaign.EntryOptions.Referral.Points(),
			}
		}
	}

	entry, err := p.store.CreateEntry(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return SubmitEntryResponse{}, ErrDuplicateEntry
		}
		p.logger.Error(ctx, "failed to create entry", err)
		return SubmitEntryResponse{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "entry_id", Value: entry.ID.String()})
	p.logger.Info(ctx, "entry created")

	if p.events != nil {
		p.events.DispatchEntryCreated(ctx, campaignID, entry.ID)
	}
	p.updateLeaderboard(ctx, campaignID, entry, params.Referral)

	return SubmitEntryResponse{
		Entry:    entry,
		Referred: params.ReferredBy != nil,
	}, nil
}

// resolveReferrer looks up the referring entry. Unknown and cross-campaign codes
// are not an error: the entry is created as a direct signup.
func (p *EntryProcessor) resolveReferrer(ctx context.Context, campaignID uuid.UUID, code string) (store.Entry, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return store.Entry{}, false
	}

	referrer, err := p.store.GetEntryByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "referral code not found, treating as direct signup")
		} else {
			p.logger.Error(ctx, "failed to look up referral code, treating as direct signup", err)
		}
		return store.Entry{}, false
	}
	if referrer.CampaignID != campaignID {
		p.logger.Info(ctx, "referral code belongs to another campaign, treating as direct signup")
		return store.Entry{}, false
	}
	return referrer, true
}

func (p *EntryProcessor) updateLeaderboard(ctx context.Context, campaignID uuid.UUID, entry store.Entry, reward *store.ReferralReward) {
	if p.leaderboard == nil {
		return
	}
	if err := p.leaderboard.SetPoints(ctx, campaignID, entry.ID, entry.Points); err != nil {
		p.logger.Error(ctx, "failed to update leaderboard for new entry", err)
	}
	if reward != nil {
		if err := p.leaderboard.SetPoints(ctx, campaignID, reward.ReferrerID, entry.ReferrerPoints); err != nil {
			p.logger.Error(ctx, "failed to update leaderboard for referrer", err)
		}
	}
}

// CompleteActionRequest represents a self-service action completion
type CompleteActionRequest struct {
	ReferralCode string
	ActionType   string
	Platform     string
}

// CompleteActionResponse reports the entry's points after the call
type CompleteActionResponse struct {
	Points           int  `json:"points"`
	AlreadyCompleted bool `json:"already_completed"`
}

// CompleteAction marks a bonus action completed on the entry, authenticated by the
// entry's referral code. Repeating a completed action returns AlreadyCompleted
// without adding points.
func (p *EntryProcessor) CompleteAction(ctx context.Context, entryID uuid.UUID, req CompleteActionRequest) (CompleteActionResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "entry_id", Value: entryID.String()},
		observability.Field{Key: "action_type", Value: req.ActionType},
		observability.Field{Key: "platform", Value: req.Platform},
	)

	entry, err := p.authenticateEntry(ctx, entryID, req.ReferralCode)
	if err != nil {
		return CompleteActionResponse{}, err
	}

	switch req.ActionType {
	case store.ActionTypeEmailSignup:
		return CompleteActionResponse{Points: entry.Points, AlreadyCompleted: true}, nil
	case store.ActionTypeReferral:
		// granted only through another entrant's submission
		return CompleteActionResponse{}, ErrActionNotEnabled
	case store.ActionTypeVisitURL, store.ActionTypeSocialFollow, store.ActionTypeSocialShare:
	default:
		return CompleteActionResponse{}, ErrUnknownActionType
	}

	campaign, err := p.store.GetCampaignByID(ctx, entry.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CompleteActionResponse{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CompleteActionResponse{}, err
	}
	if campaign.Status != store.CampaignStatusActive {
		return CompleteActionResponse{}, ErrCampaignNotActive
	}

	platform, option, ok := enabledAction(campaign.EntryOptions, req.ActionType, req.Platform)
	if !ok {
		return CompleteActionResponse{}, ErrActionNotEnabled
	}

	result, err := p.store.CompleteEntryAction(ctx, entry.ID, req.ActionType, platform, option.PointValue())
	if err != nil {
		p.logger.Error(ctx, "failed to complete entry action", err)
		return CompleteActionResponse{}, err
	}

	if result.AlreadyCompleted {
		p.logger.Info(ctx, "action already completed")
	} else if p.leaderboard != nil {
		if err := p.leaderboard.SetPoints(ctx, entry.CampaignID, entry.ID, result.Points); err != nil {
			p.logger.Error(ctx, "failed to update leaderboard", err)
		}
	}

	return CompleteActionResponse{Points: result.Points, AlreadyCompleted: result.AlreadyCompleted}, nil
}

// enabledAction returns the normalised platform and the option of an enabled action.
func enabledAction(options store.EntryOptions, actionType, platform string) (string, store.ActionOption, bool) {
	platform = strings.ToLower(strings.TrimSpace(platform))

	var option store.ActionOption
	var found bool
	switch actionType {
	case store.ActionTypeVisitURL:
		option, found = options.VisitURL, true
		platform = ""
	case store.ActionTypeSocialFollow:
		option, found = options.SocialFollow[platform]
	case store.ActionTypeSocialShare:
		option, found = options.SocialShare[platform]
	}
	if !found || !option.Enabled {
		return "", store.ActionOption{}, false
	}
	return platform, option, true
}

// GetEntryStatus returns the entry with its action log.
func (p *EntryProcessor) GetEntryStatus(ctx context.Context, entryID uuid.UUID, referralCode string) (store.Entry, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "entry_id", Value: entryID.String()})

	entry, err := p.authenticateEntry(ctx, entryID, referralCode)
	if err != nil {
		return store.Entry{}, err
	}

	actions, err := p.store.GetEntryActions(ctx, entry.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get entry actions", err)
		return store.Entry{}, err
	}
	entry.Actions = actions
	return entry, nil
}

// RevealCouponResponse carries the campaign coupon
type RevealCouponResponse struct {
	CouponCode  string `json:"coupon_code"`
	FirstReveal bool   `json:"first_reveal"`
}

// RevealCoupon releases the campaign's coupon code to an entrant and flags the
// entry the first time it happens.
func (p *EntryProcessor) RevealCoupon(ctx context.Context, entryID uuid.UUID, referralCode string) (RevealCouponResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "entry_id", Value: entryID.String()})

	entry, err := p.authenticateEntry(ctx, entryID, referralCode)
	if err != nil {
		return RevealCouponResponse{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, entry.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RevealCouponResponse{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return RevealCouponResponse{}, err
	}
	if campaign.CouponCode == nil || *campaign.CouponCode == "" {
		return RevealCouponResponse{}, ErrCouponNotAvailable
	}

	first, err := p.store.MarkCouponRevealed(ctx, entry.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to mark coupon revealed", err)
		return RevealCouponResponse{}, err
	}

	return RevealCouponResponse{CouponCode: *campaign.CouponCode, FirstReveal: first}, nil
}

func (p *EntryProcessor) authenticateEntry(ctx context.Context, entryID uuid.UUID, referralCode string) (store.Entry, error) {
	entry, err := p.store.GetEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Entry{}, ErrEntryNotFound
		}
		p.logger.Error(ctx, "failed to get entry", err)
		return store.Entry{}, err
	}
	if subtle.ConstantTimeCompare([]byte(entry.ReferralCode), []byte(referralCode)) != 1 {
		return store.Entry{}, ErrUnauthorized
	}
	return entry, nil
}

func (p *EntryProcessor) verifyCampaignAccess(ctx context.Context, ownerID, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.Campaign{}, ErrNotOwner
	}
	return campaign, nil
}

func generateReferralCode() (string, error) {
	b := make([]byte, referralCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
