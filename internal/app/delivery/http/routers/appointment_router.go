package routers

import (
	"fmt"

	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	appointmentPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)

	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.GetAppointments)
	router.With(middlewares.Authenticate).Delete(appointmentPath, appointmentController.CancelAppointment)
}
