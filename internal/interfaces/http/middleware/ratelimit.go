package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/infrastructure/ratelimit"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// GenerationRateLimit throttles the expensive studio endpoints per user.
// Runs after Auth so the key is the subject id.
func GenerationRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		subjectID := SubjectID(c)
		if subjectID == "" {
			c.Next()
			return
		}

		allowed, err := limiter.Allow("studio:"+subjectID, perMinute)
		if err != nil {
			// The limiter failing must not take the studio down with it.
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many generation requests; slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
