package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds a per-IP rate limiting middleware from a rate string
// like "10-M" (10 requests per minute). Used on the OTP and login endpoints.
func NewRateLimiter(rateStr string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		slog.Error("Invalid rate limit format, falling back to 10-M", slog.String("rate", rateStr), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance, mgin.WithErrorHandler(func(c *gin.Context, err error) {
		GetLoggerFromCtx(c.Request.Context()).Error("Rate limiter error", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}), mgin.WithLimitReachedHandler(func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later"})
	}))
}
