package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/integrations"
	"giveaway-server/internal/integrations/service"
	"giveaway-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IntegrationService interface {
	GetCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID) (service.IntegrationView, error)
	SaveCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID, req service.SaveIntegrationRequest) (service.IntegrationView, error)
	VerifyCampaignIntegration(ctx context.Context, ownerID, campaignID uuid.UUID) (integrations.Result, error)
	SendTest(ctx context.Context, ownerID, campaignID uuid.UUID, recipient integrations.TestRecipient) (integrations.Result, error)
	GetProviderInfo(ctx context.Context, ownerID, campaignID uuid.UUID) (integrations.Result, error)
	GetLists(ctx context.Context, ownerID, campaignID uuid.UUID) ([]integrations.List, integrations.Result, error)
	ResetStats(ctx context.Context, ownerID, campaignID uuid.UUID) error
	EnqueueBulkSync(ctx context.Context, ownerID, campaignID uuid.UUID) error
	ConnectEmailService(ctx context.Context, userID uuid.UUID, providerName, apiKey string) (service.EmailServiceView, error)
	ListEmailServices(ctx context.Context, userID uuid.UUID) (map[string]service.EmailServiceView, error)
	DisconnectEmailService(ctx context.Context, userID uuid.UUID, providerName string) error
}

type Handler struct {
	service IntegrationService
	logger  *observability.Logger
}

func New(service IntegrationService, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

type SendTestRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type ConnectEmailServiceRequest struct {
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// HandleGetIntegration handles GET /api/protected/campaigns/:campaign_id/integration
func (h *Handler) HandleGetIntegration(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	view, err := h.service.GetCampaignIntegration(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// HandleSaveIntegration handles PUT /api/protected/campaigns/:campaign_id/integration
func (h *Handler) HandleSaveIntegration(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	var req service.SaveIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	view, err := h.service.SaveCampaignIntegration(c.Request.Context(), userID, campaignID, req)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// HandleVerifyIntegration handles POST /api/protected/campaigns/:campaign_id/integration/verify.
// A provider rejecting the credentials is still a 200; the result says so.
func (h *Handler) HandleVerifyIntegration(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	result, err := h.service.VerifyCampaignIntegration(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSendTest handles POST /api/protected/campaigns/:campaign_id/integration/test
func (h *Handler) HandleSendTest(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	var req SendTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.service.SendTest(c.Request.Context(), userID, campaignID, integrations.TestRecipient{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetProviderInfo handles GET /api/protected/campaigns/:campaign_id/integration/info
func (h *Handler) HandleGetProviderInfo(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	result, err := h.service.GetProviderInfo(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetLists handles GET /api/protected/campaigns/:campaign_id/integration/lists
func (h *Handler) HandleGetLists(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	lists, result, err := h.service.GetLists(c.Request.Context(), userID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if lists == nil {
		lists = []integrations.List{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": result.Success,
		"message": result.Message,
		"code":    result.Code,
		"lists":   lists,
	})
}

// HandleBulkSync handles POST /api/protected/campaigns/:campaign_id/integration/sync
func (h *Handler) HandleBulkSync(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	if err := h.service.EnqueueBulkSync(c.Request.Context(), userID, campaignID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Sync of existing entries has been queued"})
}

// HandleResetStats handles POST /api/protected/campaigns/:campaign_id/integration/stats/reset
func (h *Handler) HandleResetStats(c *gin.Context) {
	userID, campaignID, ok := h.getIDs(c)
	if !ok {
		return
	}

	if err := h.service.ResetStats(c.Request.Context(), userID, campaignID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sync stats reset"})
}

// HandleListEmailServices handles GET /api/protected/email-services
func (h *Handler) HandleListEmailServices(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	services, err := h.service.ListEmailServices(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email_services": services})
}

// HandleConnectEmailService handles POST /api/protected/email-services
func (h *Handler) HandleConnectEmailService(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req ConnectEmailServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	view, err := h.service.ConnectEmailService(c.Request.Context(), userID, req.Provider, req.APIKey)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// HandleDisconnectEmailService handles DELETE /api/protected/email-services/:provider
func (h *Handler) HandleDisconnectEmailService(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if err := h.service.DisconnectEmailService(c.Request.Context(), userID, c.Param("provider")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("User-ID")
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.Unauthorized(c, "Invalid user ID")
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) getIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := h.getUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, campaignID, true
}
