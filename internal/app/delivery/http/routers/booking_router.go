package routers

import (
	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Post("/initiate", bookingController.InitiatePayment)

	// The gateway redirects the patient's browser here without our session
	// header; the order id alone identifies the confirmation.
	router.Get("/confirm", bookingController.ConfirmPayment)
}
