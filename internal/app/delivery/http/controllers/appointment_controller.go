package controllers

import (
	"net/http"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                logger,
	}
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.BookDirectRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointment, err := c.AppointmentUsecase.BookDirect(r.Context(), sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (c *AppointmentController) GetAppointments(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	appointments, err := c.AppointmentUsecase.FindAll(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, appointments)
}

func (c *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	err := c.AppointmentUsecase.CancelAppointment(r.Context(), sessionData, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, nil)
}
