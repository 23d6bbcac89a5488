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

type ScheduleController struct {
	ScheduleUsecase contracts.ScheduleUsecase
	Log             *zap.Logger
}

func NewScheduleController(scheduleUsecase contracts.ScheduleUsecase, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Log:             logger,
	}
}

func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.CreateScheduleRequest)
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

	schedule, err := c.ScheduleUsecase.CreateAvailability(r.Context(), sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScheduleSuccessMessage, schedule)
}

func (c *ScheduleController) GetSchedules(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	schedules, err := c.ScheduleUsecase.FindByDoctor(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, schedules)
}

func (c *ScheduleController) GetFreeSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get(constvars.URLQueryParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamDoctorID))
		return
	}

	date, err := utils.ParseDay(r.URL.Query().Get(constvars.URLQueryParamDate))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseTime(err))
		return
	}

	slots, err := c.ScheduleUsecase.ListFreeSlots(r.Context(), doctorID, date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFreeSlotsSuccessMessage, slots)
}

func (c *ScheduleController) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)
	periodID := chi.URLParam(r, constvars.URLParamPeriodID)

	request := new(requests.UpdatePeriodRequest)
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

	schedule, err := c.ScheduleUsecase.UpdatePeriod(r.Context(), sessionData, scheduleID, periodID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePeriodSuccessMessage, schedule)
}

func (c *ScheduleController) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)
	periodID := chi.URLParam(r, constvars.URLParamPeriodID)

	err := c.ScheduleUsecase.DeletePeriod(r.Context(), sessionData, scheduleID, periodID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePeriodSuccessMessage, nil)
}
