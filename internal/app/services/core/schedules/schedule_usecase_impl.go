package schedules

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	SessionService     contracts.SessionService
	Log                *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			ScheduleRepository: scheduleRepository,
			SessionService:     sessionService,
			Log:                logger,
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) CreateAvailability(ctx context.Context, sessionData string, request *requests.CreateScheduleRequest) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("only doctors can declare availability"))
	}

	periods, err := buildPeriods(request.Periods)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateAvailability error parsing periods",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := uc.existingPeriods(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	err = ValidateNoOverlap(existing, periods, "")
	if err != nil {
		uc.Log.Warn("scheduleUsecase.CreateAvailability overlap rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule := &models.Schedule{
		DoctorID:        session.DoctorID,
		ConsultationFee: request.ConsultationFee,
		Periods:         periods,
	}
	for _, period := range periods {
		schedule.Slots = append(schedule.Slots, MaterializeSlots(period)...)
	}

	schedule, err = uc.ScheduleRepository.Insert(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateAvailability error inserting schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, schedule.ID.Hex()),
		zap.Int(constvars.LoggingSlotCountKey, len(schedule.Slots)),
	)
	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) FindByDoctor(ctx context.Context, sessionData string) ([]responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.FindByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("only doctors own schedules"))
	}

	schedules, err := uc.ScheduleRepository.FindByDoctor(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Schedule, 0, len(schedules))
	for i := range schedules {
		response = append(response, *buildScheduleResponse(&schedules[i]))
	}
	return response, nil
}

func (uc *scheduleUsecase) ListFreeSlots(ctx context.Context, doctorID string, date time.Time) ([]responses.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ListFreeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	schedules, err := uc.ScheduleRepository.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	dateKey := utils.DateKey(date)
	freeSlots := make([]responses.Slot, 0)
	for i := range schedules {
		for _, slot := range schedules[i].Slots {
			if slot.IsBooked || utils.DateKey(slot.Day) != dateKey {
				continue
			}
			freeSlots = append(freeSlots, buildSlotResponse(slot))
		}
	}
	sort.Slice(freeSlots, func(i, j int) bool {
		return freeSlots[i].SlotTime.Before(freeSlots[j].SlotTime)
	})

	uc.Log.Info("scheduleUsecase.ListFreeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(freeSlots)),
	)
	return freeSlots, nil
}

func (uc *scheduleUsecase) UpdatePeriod(ctx context.Context, sessionData, scheduleID, periodID string, request *requests.UpdatePeriodRequest) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdatePeriod called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.ownedSchedule(ctx, session, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.FindPeriod(periodID) == nil {
		return nil, exceptions.ErrPeriodNotFound(nil)
	}

	period, err := buildPeriod(requests.AvailabilityPeriodRequest(*request))
	if err != nil {
		return nil, err
	}
	period.ID = periodID

	existing, err := uc.existingPeriods(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	err = ValidateNoOverlap(existing, []models.AvailabilityPeriod{period}, periodID)
	if err != nil {
		return nil, err
	}

	slots := MaterializeSlots(period)
	err = uc.ScheduleRepository.UpdatePeriod(ctx, scheduleID, period, slots)
	if err != nil {
		uc.Log.Error("scheduleUsecase.UpdatePeriod error updating period",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.UpdatePeriod succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return buildScheduleResponse(updated), nil
}

func (uc *scheduleUsecase) DeletePeriod(ctx context.Context, sessionData, scheduleID, periodID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeletePeriod called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	_, err = uc.ownedSchedule(ctx, session, scheduleID)
	if err != nil {
		return err
	}

	err = uc.ScheduleRepository.DeletePeriod(ctx, scheduleID, periodID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.DeletePeriod error deleting period",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("scheduleUsecase.DeletePeriod succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return nil
}

func (uc *scheduleUsecase) ownedSchedule(ctx context.Context, session *models.Session, scheduleID string) (*models.Schedule, error) {
	if session.IsNotDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("only doctors own schedules"))
	}
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.DoctorID != session.DoctorID {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("schedule belongs to another doctor"))
	}
	return schedule, nil
}

func (uc *scheduleUsecase) existingPeriods(ctx context.Context, doctorID string) ([]models.AvailabilityPeriod, error) {
	schedules, err := uc.ScheduleRepository.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	var periods []models.AvailabilityPeriod
	for i := range schedules {
		periods = append(periods, schedules[i].Periods...)
	}
	return periods, nil
}

func buildPeriod(request requests.AvailabilityPeriodRequest) (models.AvailabilityPeriod, error) {
	day, err := utils.ParseDay(request.Day)
	if err != nil {
		return models.AvailabilityPeriod{}, exceptions.ErrCannotParseTime(err)
	}
	start, err := utils.CombineDayAndClock(request.Day, request.Start)
	if err != nil {
		return models.AvailabilityPeriod{}, exceptions.ErrCannotParseTime(err)
	}
	end, err := utils.CombineDayAndClock(request.Day, request.End)
	if err != nil {
		return models.AvailabilityPeriod{}, exceptions.ErrCannotParseTime(err)
	}
	if !start.Before(end) {
		return models.AvailabilityPeriod{}, exceptions.ErrInputValidation(errors.New("period start must be before its end"))
	}

	return models.AvailabilityPeriod{
		ID:              utils.GeneratePeriodID(),
		Day:             day,
		Start:           start,
		End:             end,
		DurationMinutes: request.DurationMinutes,
	}, nil
}

func buildPeriods(periodRequests []requests.AvailabilityPeriodRequest) ([]models.AvailabilityPeriod, error) {
	periods := make([]models.AvailabilityPeriod, 0, len(periodRequests))
	for _, periodRequest := range periodRequests {
		period, err := buildPeriod(periodRequest)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return periods, nil
}

func buildSlotResponse(slot models.Slot) responses.Slot {
	return responses.Slot{
		ID:       slot.ID,
		PeriodID: slot.PeriodID,
		Day:      slot.Day,
		SlotTime: slot.SlotTime,
		IsBooked: slot.IsBooked,
	}
}

func buildScheduleResponse(schedule *models.Schedule) *responses.Schedule {
	periods := make([]responses.AvailabilityPeriod, 0, len(schedule.Periods))
	for _, period := range schedule.Periods {
		periods = append(periods, responses.AvailabilityPeriod{
			ID:              period.ID,
			Day:             period.Day,
			Start:           period.Start,
			End:             period.End,
			DurationMinutes: period.DurationMinutes,
		})
	}

	slots := make([]responses.Slot, 0, len(schedule.Slots))
	for _, slot := range schedule.Slots {
		slots = append(slots, buildSlotResponse(slot))
	}

	return &responses.Schedule{
		ID:              schedule.ID.Hex(),
		DoctorID:        schedule.DoctorID,
		ConsultationFee: schedule.ConsultationFee,
		Periods:         periods,
		Slots:           slots,
	}
}
