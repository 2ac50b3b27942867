package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/entries/processor"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryProcessor is the entry operations exposed over HTTP
type EntryProcessor interface {
	SubmitEntry(ctx context.Context, campaignID uuid.UUID, req processor.SubmitEntryRequest) (processor.SubmitEntryResponse, error)
	CompleteAction(ctx context.Context, entryID uuid.UUID, req processor.CompleteActionRequest) (processor.CompleteActionResponse, error)
	GetEntryStatus(ctx context.Context, entryID uuid.UUID, referralCode string) (store.Entry, error)
	RevealCoupon(ctx context.Context, entryID uuid.UUID, referralCode string) (processor.RevealCouponResponse, error)
	ListEntries(ctx context.Context, ownerID, campaignID uuid.UUID, page, limit int) (processor.ListEntriesResponse, error)
	ExportEntriesCSV(ctx context.Context, ownerID, campaignID uuid.UUID, w io.Writer) error
	GetStats(ctx context.Context, ownerID, campaignID uuid.UUID) (processor.CampaignStats, error)
}

type Handler struct {
	processor EntryProcessor
	logger    *observability.Logger
}

func New(processor EntryProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubmitEntryRequest is the public entry form
type SubmitEntryRequest struct {
	Email           string `json:"email" binding:"required"`
	Name            string `json:"name" binding:"max=255"`
	NewsletterOptIn bool   `json:"newsletter_opt_in"`
	ReferralCode    string `json:"referral_code"`
}

// CompleteActionRequest completes a bonus action on the caller's entry
type CompleteActionRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
	ActionType   string `json:"action_type" binding:"required"`
	Platform     string `json:"platform"`
}

// EntryCodeRequest authenticates an entrant by their referral code
type EntryCodeRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

// HandleSubmitEntry handles POST /api/campaigns/:campaign_id/entries
func (h *Handler) HandleSubmitEntry(c *gin.Context) {
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	resp, err := h.processor.SubmitEntry(c.Request.Context(), campaignID, processor.SubmitEntryRequest{
		Email:           req.Email,
		Name:            req.Name,
		NewsletterOptIn: req.NewsletterOptIn,
		ReferralCode:    req.ReferralCode,
		IPAddress:       observability.GetRealClientIP(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// HandleCompleteAction handles POST /api/entries/:entry_id/actions
func (h *Handler) HandleCompleteAction(c *gin.Context) {
	entryID, ok := h.getEntryID(c)
	if !ok {
		return
	}

	var req CompleteActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	resp, err := h.processor.CompleteAction(c.Request.Context(), entryID, processor.CompleteActionRequest{
		ReferralCode: req.ReferralCode,
		ActionType:   req.ActionType,
		Platform:     req.Platform,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetEntry handles GET /api/entries/:entry_id?code=
func (h *Handler) HandleGetEntry(c *gin.Context) {
	entryID, ok := h.getEntryID(c)
	if !ok {
		return
	}
	code := c.Query("code")
	if code == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "code is required")
		return
	}

	entry, err := h.processor.GetEntryStatus(c.Request.Context(), entryID, code)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// HandleRevealCoupon handles POST /api/entries/:entry_id/coupon
func (h *Handler) HandleRevealCoupon(c *gin.Context) {
	entryID, ok := h.getEntryID(c)
	if !ok {
		return
	}

	var req EntryCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	resp, err := h.processor.RevealCoupon(c.Request.Context(), entryID, req.ReferralCode)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleListEntries handles GET /api/protected/campaigns/:campaign_id/entries
func (h *Handler) HandleListEntries(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1, 1, processor.MaxPage)
	limit := queryInt(c, "limit", 50, 1, 100)

	resp, err := h.processor.ListEntries(c.Request.Context(), userID, campaignID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleExportEntries handles GET /api/protected/campaigns/:campaign_id/entries/export
func (h *Handler) HandleExportEntries(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	// Buffered so a failure halfway through still returns a clean error.
	var buf bytes.Buffer
	if err := h.processor.ExportEntriesCSV(c.Request.Context(), userID, campaignID, &buf); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=entries-%s.csv", campaignID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleGetStats handles GET /api/protected/campaigns/:campaign_id/stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	stats, err := h.processor.GetStats(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return uuid.UUID{}, false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "Invalid user ID")
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) getEntryID(c *gin.Context) (uuid.UUID, bool) {
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid entry ID format")
		return uuid.UUID{}, false
	}
	return entryID, true
}

// queryInt reads an integer query parameter, falling back to def when it is
// missing or outside [lo, hi].
func queryInt(c *gin.Context, key string, def, lo, hi int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < lo || n > hi {
		return def
	}
	return n
}
