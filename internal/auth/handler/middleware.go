package handler

import (
	"context"
	"errors"
	"strings"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/auth/processor"
	"giveaway-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	tokens TokenValidator
	logger *observability.Logger
}

func New(tokens TokenValidator, logger *observability.Logger) Handler {
	return Handler{
		tokens: tokens,
		logger: logger,
	}
}

// HandleJWTMiddleware authenticates organiser requests and stores the user id
// under "User-ID".
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	tokenHeader := c.GetHeader("Authorization")
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	claims, err := h.tokens.ValidateJWTToken(c.Request.Context(), strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		if errors.Is(err, processor.ErrExpiredToken) {
			apierrors.Unauthorized(c, "Authorization token has expired")
			return
		}
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	c.Set("User-ID", claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "user_id", Value: claims.Subject},
	))
	c.Next()
}
