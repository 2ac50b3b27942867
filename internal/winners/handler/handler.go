package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/winners"
	"giveaway-server/internal/winners/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WinnerProcessor interface {
	SelectWinners(ctx context.Context, ownerID, campaignID uuid.UUID) (processor.SelectWinnersResponse, error)
	GetWinners(ctx context.Context, ownerID, campaignID uuid.UUID) ([]winners.Winner, error)
	ExportWinnersCSV(ctx context.Context, ownerID, campaignID uuid.UUID, w io.Writer) error
}

type Handler struct {
	processor WinnerProcessor
	logger    *observability.Logger
}

func New(processor WinnerProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleSelectWinners handles POST /api/protected/campaigns/:campaign_id/winners
func (h *Handler) HandleSelectWinners(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	resp, err := h.processor.SelectWinners(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetWinners handles GET /api/protected/campaigns/:campaign_id/winners
func (h *Handler) HandleGetWinners(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	list, err := h.processor.GetWinners(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if list == nil {
		list = []winners.Winner{}
	}

	c.JSON(http.StatusOK, gin.H{"winners": list})
}

// HandleExportWinners handles GET /api/protected/campaigns/:campaign_id/winners/export
func (h *Handler) HandleExportWinners(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.processor.ExportWinnersCSV(c.Request.Context(), userID, campaignID, &buf); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=winners-%s.csv", campaignID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) getIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return uuid.Nil, uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "Invalid user ID")
		return uuid.Nil, uuid.Nil, false
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, campaignID, true
}
