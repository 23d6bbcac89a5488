package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRoutes(router chi.Router, middlewares *middlewares.Middlewares, webhookController *controllers.WebhookController) {
	router.With(middlewares.WebhookRateLimit()).Post("/payment", webhookController.PaymentNotification)
}
