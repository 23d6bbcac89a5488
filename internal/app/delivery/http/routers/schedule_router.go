package routers

import (
	"fmt"

	"clinicbook-service/internal/app/delivery/http/controllers"
	"clinicbook-service/internal/app/delivery/http/middlewares"
	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	periodPath := fmt.Sprintf("/{%s}/periods/{%s}", constvars.URLParamScheduleID, constvars.URLParamPeriodID)

	router.Get("/free-slots", scheduleController.GetFreeSlots)
	router.With(middlewares.Authenticate).Post("/", scheduleController.CreateSchedule)
	router.With(middlewares.Authenticate).Get("/", scheduleController.GetSchedules)
	router.With(middlewares.Authenticate).Put(periodPath, scheduleController.UpdatePeriod)
	router.With(middlewares.Authenticate).Delete(periodPath, scheduleController.DeletePeriod)
}
