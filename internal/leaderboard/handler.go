package leaderboard

import (
	"errors"
	"net/http"
	"strconv"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the public leaderboard
type Handler struct {
	service *Service
	logger  *observability.Logger
}

func NewHandler(service *Service, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGetLeaderboard handles GET /api/campaigns/:campaign_id/leaderboard
func (h *Handler) HandleGetLeaderboard(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "campaign_id", Value: campaignID})

	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 1 {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "limit must be a positive integer")
			return
		}
	}

	positions, err := h.service.Top(ctx, campaignID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": positions})
}

// HandleGetRank handles GET /api/campaigns/:campaign_id/leaderboard/:entry_id
func (h *Handler) HandleGetRank(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return
	}
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid entry ID format")
		return
	}

	position, err := h.service.Rank(c.Request.Context(), campaignID, entryID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEntryNotRanked):
		apierrors.NotFound(c, apierrors.CodeEntryNotFound, "Entry is not on the leaderboard")
	case errors.Is(err, ErrUnavailable):
		apierrors.ServiceUnavailable(c, "Leaderboard is temporarily unavailable", err)
	default:
		apierrors.RespondWithError(c, err)
	}
}
