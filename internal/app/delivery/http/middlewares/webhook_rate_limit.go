package middlewares

import (
	"net/http"

	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// WebhookRateLimit throttles the gateway notification endpoint with a single
// shared token bucket. The gateway retries rejected notifications, so
// shedding load here is safe.
func (m *Middlewares) WebhookRateLimit() func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(
		rate.Limit(m.InternalConfig.Booking.WebhookRatePerSecond),
		m.InternalConfig.Booking.WebhookRateBurst,
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				utils.BuildErrorResponse(m.Log, w, exceptions.BuildNewCustomError(
					nil,
					constvars.StatusTooManyRequests,
					constvars.ErrClientTooManyRequests,
					constvars.ErrDevTooManyRequests,
				))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
