package apierrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine readable error codes
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeCampaignNotFound       = "CAMPAIGN_NOT_FOUND"
	CodeEntryNotFound          = "ENTRY_NOT_FOUND"
	CodeCampaignNotActive      = "CAMPAIGN_NOT_ACTIVE"
	CodeDuplicateEntry         = "DUPLICATE_ENTRY"
	CodeEntryLimitReached      = "ENTRY_LIMIT_REACHED"
	CodeInvalidEmail           = "INVALID_EMAIL"
	CodeUnknownActionType      = "UNKNOWN_ACTION_TYPE"
	CodeActionNotEnabled       = "ACTION_NOT_ENABLED"
	CodeCouponNotAvailable     = "COUPON_NOT_AVAILABLE"
	CodeCampaignNotEligible    = "CAMPAIGN_NOT_ELIGIBLE"
	CodeWinnersAlreadySelected = "WINNERS_ALREADY_SELECTED"
	CodeNoEntries              = "NO_ENTRIES"
	CodeInsufficientEntries    = "INSUFFICIENT_ENTRIES"
	CodeInvalidProvider        = "INVALID_PROVIDER"
	CodeMissingConfig          = "MISSING_CONFIG"
	CodeIntegrationNotFound    = "INTEGRATION_NOT_CONFIGURED"
	CodeIntegrationNotVerified = "INTEGRATION_NOT_VERIFIED"
	CodeListsNotSupported      = "LISTS_NOT_SUPPORTED"
	CodeEmailServiceNotFound   = "EMAIL_SERVICE_NOT_FOUND"
	CodeVerificationFailed     = "VERIFICATION_FAILED"
	CodeRateLimited            = "RATE_LIMIT_EXCEEDED"
	CodeServiceUnavailable     = "SERVICE_UNAVAILABLE"
	CodeInternal               = "INTERNAL_ERROR"
)

// APIError is a sanitized error ready to be written to a client
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Err is the underlying error, logged but never returned to the client.
	Err error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(status int, code, message string) *APIError {
	return &APIError{StatusCode: status, Code: code, Message: message}
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, code, message string) {
	respond(c, newAPIError(http.StatusNotFound, code, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, newAPIError(http.StatusBadRequest, code, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, newAPIError(http.StatusUnauthorized, CodeUnauthorized, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, newAPIError(http.StatusForbidden, code, message))
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	respond(c, newAPIError(http.StatusTooManyRequests, CodeRateLimited, message))
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	respond(c, internalError(internalErr))
}

func internalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

// ServiceUnavailable sends a 503 response and logs the internal error
func ServiceUnavailable(c *gin.Context, message string, internalErr error) {
	respond(c, &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       CodeServiceUnavailable,
		Message:    message,
		Err:        internalErr,
	})
}
