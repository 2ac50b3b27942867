package ratelimit

import (
	"fmt"
	"math"
	"strconv"

	"giveaway-server/internal/apierrors"
	"giveaway-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. When Redis is unavailable the
// request is let through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := observability.GetRealClientIP(c)
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "client_ip", Value: ip},
			observability.Field{Key: "rate_limit", Value: s.limit},
		)

		if !s.redis.IsEnabled() {
			c.Next()
			return
		}

		result, err := s.CheckRateLimit(ctx, ip)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(float64(result.RetryAfterMs) / 1000))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			s.logger.Warn(ctx, fmt.Sprintf("rate limit exceeded, retry after %ds", retryAfter))
			apierrors.TooManyRequests(c, "Too many entries from this address. Please try again later.")
			return
		}

		c.Next()
	}
}
