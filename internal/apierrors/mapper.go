package apierrors

import (
	"errors"
	"net/http"

	entriesProcessor "giveaway-server/internal/entries/processor"
	"giveaway-server/internal/integrations"
	integrationsService "giveaway-server/internal/integrations/service"
	"giveaway-server/internal/observability"
	"giveaway-server/internal/store"
	winnersProcessor "giveaway-server/internal/winners/processor"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MapError converts domain errors to APIErrors. Unknown errors become a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Entries
	case errors.Is(err, entriesProcessor.ErrInvalidEmail):
		return newAPIError(http.StatusBadRequest, CodeInvalidEmail, "Email must be a valid email address")
	case errors.Is(err, entriesProcessor.ErrCampaignNotFound):
		return newAPIError(http.StatusNotFound, CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, entriesProcessor.ErrCampaignNotActive):
		return newAPIError(http.StatusUnprocessableEntity, CodeCampaignNotActive, "This campaign is not currently accepting entries")
	case errors.Is(err, entriesProcessor.ErrDuplicateEntry):
		return newAPIError(http.StatusConflict, CodeDuplicateEntry, "This email has already entered the giveaway")
	case errors.Is(err, entriesProcessor.ErrEntryLimitReached):
		return newAPIError(http.StatusForbidden, CodeEntryLimitReached, "This giveaway has reached its entry limit")
	case errors.Is(err, entriesProcessor.ErrEntryNotFound):
		return newAPIError(http.StatusNotFound, CodeEntryNotFound, "Entry not found")
	case errors.Is(err, entriesProcessor.ErrUnauthorized):
		return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "Referral code does not match this entry")
	case errors.Is(err, entriesProcessor.ErrNotOwner):
		return newAPIError(http.StatusForbidden, CodeForbidden, "You do not have access to this campaign")
	case errors.Is(err, entriesProcessor.ErrUnknownActionType):
		return newAPIError(http.StatusBadRequest, CodeUnknownActionType, "Unknown action type")
	case errors.Is(err, entriesProcessor.ErrActionNotEnabled):
		return newAPIError(http.StatusBadRequest, CodeActionNotEnabled, "This action is not enabled for the campaign")
	case errors.Is(err, entriesProcessor.ErrCouponNotAvailable):
		return newAPIError(http.StatusNotFound, CodeCouponNotAvailable, "This campaign has no coupon")

	// Winners
	case errors.Is(err, winnersProcessor.ErrCampaignNotFound):
		return newAPIError(http.StatusNotFound, CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, winnersProcessor.ErrUnauthorized):
		return newAPIError(http.StatusForbidden, CodeForbidden, "You do not have access to this campaign")
	case errors.Is(err, winnersProcessor.ErrCampaignNotEligible):
		return notEligible(CodeCampaignNotEligible, err)
	case errors.Is(err, winnersProcessor.ErrWinnersAlreadySelected):
		return newAPIError(http.StatusConflict, CodeWinnersAlreadySelected, "Winners have already been selected for this campaign")
	case errors.Is(err, winnersProcessor.ErrNoEntries):
		return newAPIError(http.StatusUnprocessableEntity, CodeNoEntries, "This campaign has no entries")
	case errors.Is(err, winnersProcessor.ErrInsufficientEntries):
		return notEligible(CodeInsufficientEntries, err)

	// Integrations
	case errors.Is(err, integrationsService.ErrCampaignNotFound):
		return newAPIError(http.StatusNotFound, CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, integrationsService.ErrNotOwner):
		return newAPIError(http.StatusForbidden, CodeForbidden, "You do not have access to this campaign")
	case errors.Is(err, integrationsService.ErrEntryNotFound):
		return newAPIError(http.StatusNotFound, CodeEntryNotFound, "Entry not found")
	case errors.Is(err, integrationsService.ErrInvalidProvider),
		errors.Is(err, integrations.ErrUnsupportedProvider),
		errors.Is(err, integrations.ErrNoProviderSpecified):
		return newAPIError(http.StatusBadRequest, CodeInvalidProvider, "Unsupported email provider")
	case errors.Is(err, integrations.ErrMissingConfig):
		return &APIError{StatusCode: http.StatusBadRequest, Code: CodeMissingConfig, Message: err.Error(), Err: err}
	case errors.Is(err, integrationsService.ErrIntegrationNotConfigured):
		return newAPIError(http.StatusNotFound, CodeIntegrationNotFound, "No email integration is configured for this campaign")
	case errors.Is(err, integrationsService.ErrIntegrationNotVerified):
		return newAPIError(http.StatusBadRequest, CodeIntegrationNotVerified, "Verify the integration before syncing entries")
	case errors.Is(err, integrationsService.ErrListsNotSupported):
		return newAPIError(http.StatusBadRequest, CodeListsNotSupported, "This provider does not expose lists")
	case errors.Is(err, integrationsService.ErrEmailServiceNotFound):
		return newAPIError(http.StatusNotFound, CodeEmailServiceNotFound, "Email service is not connected")
	case errors.Is(err, integrationsService.ErrEmailServiceVerifyFailed):
		// The provider's message tells the user what is wrong with the key.
		return &APIError{StatusCode: http.StatusBadRequest, Code: CodeVerificationFailed, Message: err.Error(), Err: err}
	case errors.Is(err, integrationsService.ErrBulkSyncUnavailable):
		return &APIError{StatusCode: http.StatusServiceUnavailable, Code: CodeServiceUnavailable, Message: "Bulk sync is temporarily unavailable", Err: err}

	// Store
	case errors.Is(err, store.ErrNotFound):
		return newAPIError(http.StatusNotFound, CodeNotFound, "Resource not found")
	case errors.Is(err, store.ErrConflict):
		return newAPIError(http.StatusConflict, CodeInvalidInput, "The resource was modified concurrently, please retry")

	default:
		return internalError(err)
	}
}

// RespondWithError maps err and sends a sanitized JSON response. Processors have
// already logged the detailed error; this logs the response for correlation.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respond(c, MapError(err))
}

func respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}

// notEligible keeps the wrapped message because it names the dates and counts
// the organiser needs to see.
func notEligible(code string, err error) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Code: code, Message: err.Error(), Err: err}
}
