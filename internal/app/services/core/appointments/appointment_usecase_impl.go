package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	ScheduleRepository     contracts.ScheduleRepository
	SessionService         contracts.SessionService
	VideoCredentialService contracts.VideoCredentialService
	MailerService          contracts.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	scheduleRepository contracts.ScheduleRepository,
	sessionService contracts.SessionService,
	videoCredentialService contracts.VideoCredentialService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			ScheduleRepository:     scheduleRepository,
			SessionService:         sessionService,
			VideoCredentialService: videoCredentialService,
			MailerService:          mailerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookDirect(ctx context.Context, sessionData string, request *requests.BookDirectRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookDirect called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotPatient() {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("only patients can book appointments"))
	}
	request.PatientID = session.PatientID

	schedule, slot, err := uc.ScheduleRepository.FindBookableSlot(ctx, request.DoctorID, request.SlotID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.BookDirect slot not bookable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.buildAppointment(schedule, slot, request.PatientID, request.PatientName, request.PatientEmail, request.PatientPhone, request.Reason, "")
	if err != nil {
		return nil, err
	}

	appointment, err = uc.ScheduleRepository.BookSlotWithAppointment(ctx, schedule.ID.Hex(), slot.ID, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookDirect error committing booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.sendConfirmationEmail(ctx, appointment)

	uc.Log.Info("appointmentUsecase.BookDirect succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	switch {
	case session.IsPatient():
		appointments, err = uc.AppointmentRepository.FindByPatient(ctx, session.PatientID)
	case session.IsDoctor():
		appointments, err = uc.AppointmentRepository.FindByDoctor(ctx, session.DoctorID)
	default:
		return nil, exceptions.ErrNotMatchRoleType(errors.New("session carries neither patient nor doctor identity"))
	}
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *buildAppointmentResponse(&appointments[i]))
	}
	return response, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	ownedByPatient := session.IsPatient() && session.PatientID == appointment.PatientID
	ownedByDoctor := session.IsDoctor() && session.DoctorID == appointment.DoctorID
	if !ownedByPatient && !ownedByDoctor {
		return exceptions.ErrNotMatchRoleType(errors.New("appointment belongs to someone else"))
	}

	// The slot reopens first; releasing an open slot is harmless, so a retry
	// after a partial failure converges.
	err = uc.ScheduleRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.SlotID)
	if err != nil {
		if !exceptions.HasCode(err, exceptions.CodeSlotNotFound) {
			uc.Log.Error("appointmentUsecase.CancelAppointment error releasing slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, appointment.SlotID),
				zap.Error(err),
			)
			return err
		}
		// An appointment pointing at a slot that no longer exists is a data
		// inconsistency. The cancellation still completes.
		uc.Log.Warn("appointmentUsecase.CancelAppointment slot missing on release",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingSlotIDKey, appointment.SlotID),
			zap.Error(err),
		)
	}

	err = uc.AppointmentRepository.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) buildAppointment(schedule *models.Schedule, slot *models.Slot, patientID, patientName, patientEmail, patientPhone, reason, orderID string) (*models.Appointment, error) {
	roomID := uc.VideoCredentialService.RoomIDForSlot(slot.ID)
	token, err := uc.VideoCredentialService.MintCredential(roomID, patientID, constvars.ClinicbookRolePatient)
	if err != nil {
		return nil, err
	}

	return &models.Appointment{
		DoctorID:        schedule.DoctorID,
		PatientID:       patientID,
		ScheduleID:      schedule.ID.Hex(),
		SlotID:          slot.ID,
		ScheduledTime:   slot.SlotTime,
		Status:          models.AppointmentActive,
		PatientName:     patientName,
		PatientEmail:    patientEmail,
		PatientPhone:    patientPhone,
		Reason:          reason,
		ConsultationFee: schedule.ConsultationFee,
		OrderID:         orderID,
		VideoRoomID:     roomID,
		VideoToken:      token,
	}, nil
}

func (uc *appointmentUsecase) sendConfirmationEmail(ctx context.Context, appointment *models.Appointment) {
	if appointment.PatientEmail == "" || !uc.MailerService.ValidateEmail(appointment.PatientEmail) {
		return
	}

	payload := &requests.EmailPayload{
		Subject:  constvars.EmailAppointmentConfirmedSubject,
		From:     uc.InternalConfig.App.MailerEmailSender,
		To:       []string{appointment.PatientEmail},
		HTMLCode: fmt.Sprintf(constvars.EmailBodyAppointmentConfirmed, appointment.ScheduledTime.Format(time.RFC1123)),
	}
	err := uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("appointmentUsecase.sendConfirmationEmail error publishing email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecipientKey, appointment.PatientEmail),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID.Hex(),
		Status:          string(appointment.Status),
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		SlotID:          appointment.SlotID,
		ScheduledTime:   appointment.ScheduledTime,
		Reason:          appointment.Reason,
		ConsultationFee: appointment.ConsultationFee,
		OrderID:         appointment.OrderID,
		VideoRoomID:     appointment.VideoRoomID,
		VideoToken:      appointment.VideoToken,
	}
}
