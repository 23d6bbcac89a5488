package bookings

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
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	StagingRepository      contracts.StagingRepository
	AppointmentRepository  contracts.AppointmentRepository
	ScheduleRepository     contracts.ScheduleRepository
	SessionService         contracts.SessionService
	PaymentGatewayService  contracts.PaymentGatewayService
	VideoCredentialService contracts.VideoCredentialService
	MailerService          contracts.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	retry                  retryPolicy
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	stagingRepository contracts.StagingRepository,
	appointmentRepository contracts.AppointmentRepository,
	scheduleRepository contracts.ScheduleRepository,
	sessionService contracts.SessionService,
	paymentGatewayService contracts.PaymentGatewayService,
	videoCredentialService contracts.VideoCredentialService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			StagingRepository:      stagingRepository,
			AppointmentRepository:  appointmentRepository,
			ScheduleRepository:     scheduleRepository,
			SessionService:         sessionService,
			PaymentGatewayService:  paymentGatewayService,
			VideoCredentialService: videoCredentialService,
			MailerService:          mailerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
			retry: retryPolicy{
				maxAttempts: internalConfig.Booking.ConfirmMaxAttempts,
				baseDelay:   time.Duration(internalConfig.Booking.ConfirmBackoffBaseInMs) * time.Millisecond,
			},
		}
	})
	return bookingUsecaseInstance
}

// InitiatePayment validates the slot is open, stages the booking intent under
// a fresh order id and hands back the gateway checkout payload. The slot is
// NOT reserved here; it stays contested until a payment confirms.
func (uc *bookingUsecase) InitiatePayment(ctx context.Context, sessionData string, request *requests.InitiatePaymentRequest) (*responses.InitiatePayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.InitiatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotPatient() {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("only patients can initiate a paid booking"))
	}
	request.PatientID = session.PatientID

	schedule, slot, err := uc.ScheduleRepository.FindBookableSlot(ctx, request.DoctorID, request.SlotID)
	if err != nil {
		uc.Log.Warn("bookingUsecase.InitiatePayment slot not bookable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	orderID := utils.GenerateOrderID()
	intent := &models.StagedBookingIntent{
		OrderID:         orderID,
		DoctorID:        request.DoctorID,
		PatientID:       request.PatientID,
		SlotID:          slot.ID,
		PatientName:     request.PatientName,
		PatientEmail:    request.PatientEmail,
		PatientPhone:    request.PatientPhone,
		Reason:          request.Reason,
		ConsultationFee: schedule.ConsultationFee,
		StagedAt:        time.Now(),
	}
	err = uc.StagingRepository.Save(ctx, intent)
	if err != nil {
		uc.Log.Error("bookingUsecase.InitiatePayment error staging intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}

	checkout := uc.PaymentGatewayService.BuildCheckout(orderID, schedule.ConsultationFee, request.PatientEmail)

	uc.Log.Info("bookingUsecase.InitiatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return &responses.InitiatePayment{
		OrderID:  orderID,
		Checkout: checkout,
	}, nil
}

// ConfirmPayment is idempotent on order id. Both the browser redirect and the
// gateway webhook land here; whichever arrives second gets the appointment
// the first one committed.
func (uc *bookingUsecase) ConfirmPayment(ctx context.Context, orderID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	existing, err := uc.AppointmentRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("bookingUsecase.ConfirmPayment already confirmed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
		)
		return buildAppointmentResponse(existing), nil
	}

	intent, err := uc.StagingRepository.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.commitStagedBooking(ctx, intent)
	if err != nil {
		return nil, err
	}

	evictErr := uc.StagingRepository.Evict(ctx, orderID)
	if evictErr != nil {
		uc.Log.Warn("bookingUsecase.ConfirmPayment error evicting staged intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(evictErr),
		)
	}

	uc.sendConfirmationEmail(ctx, appointment)

	uc.Log.Info("bookingUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return buildAppointmentResponse(appointment), nil
}

// HandlePaymentNotification authenticates the gateway webhook and, on a
// success status, confirms the order. Non-success statuses are acknowledged
// without touching the staged intent; its TTL handles cleanup.
func (uc *bookingUsecase) HandlePaymentNotification(ctx context.Context, request *requests.PaymentNotificationRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.HandlePaymentNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingPaymentStatusKey, request.StatusCode),
	)

	err := uc.PaymentGatewayService.VerifyNotificationSignature(request)
	if err != nil {
		uc.Log.Warn("bookingUsecase.HandlePaymentNotification signature rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.Error(err),
		)
		return err
	}

	if !uc.PaymentGatewayService.IsSuccessStatus(request.StatusCode) {
		uc.Log.Info("bookingUsecase.HandlePaymentNotification ignoring non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.String(constvars.LoggingPaymentStatusKey, request.StatusCode),
		)
		return nil
	}

	_, err = uc.ConfirmPayment(ctx, request.OrderID)
	return err
}

// commitStagedBooking runs the slot-flip plus appointment-insert transaction
// under the retry policy. A concurrent confirmation of the same order may win
// at either guard, the slot flip or the unique order_id index, so any failed
// commit re-checks the order id and yields the winner's appointment.
func (uc *bookingUsecase) commitStagedBooking(ctx context.Context, intent *models.StagedBookingIntent) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var appointment *models.Appointment
	attempt := 0
	err := uc.retry.run(ctx, func() error {
		attempt++
		if attempt > 1 {
			uc.Log.Warn("bookingUsecase.commitStagedBooking retrying transient failure",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOrderIDKey, intent.OrderID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
		}

		schedule, slot, err := uc.ScheduleRepository.FindBookableSlot(ctx, intent.DoctorID, intent.SlotID)
		if err != nil {
			return err
		}

		candidate, err := uc.buildAppointment(schedule, slot, intent)
		if err != nil {
			return err
		}

		candidate, err = uc.ScheduleRepository.BookSlotWithAppointment(ctx, schedule.ID.Hex(), slot.ID, candidate)
		if err != nil {
			return err
		}
		appointment = candidate
		return nil
	})
	if err == nil {
		return appointment, nil
	}

	winner, findErr := uc.AppointmentRepository.FindByOrderID(ctx, intent.OrderID)
	if findErr == nil && winner != nil {
		uc.Log.Info("bookingUsecase.commitStagedBooking racing confirmation won",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, intent.OrderID),
		)
		return winner, nil
	}
	if isTransient(err) {
		return nil, exceptions.ErrBookingRetryExhausted(err)
	}
	return nil, err
}

func (uc *bookingUsecase) buildAppointment(schedule *models.Schedule, slot *models.Slot, intent *models.StagedBookingIntent) (*models.Appointment, error) {
	roomID := uc.VideoCredentialService.RoomIDForSlot(slot.ID)
	token, err := uc.VideoCredentialService.MintCredential(roomID, intent.PatientID, constvars.ClinicbookRolePatient)
	if err != nil {
		return nil, err
	}

	return &models.Appointment{
		DoctorID:        schedule.DoctorID,
		PatientID:       intent.PatientID,
		ScheduleID:      schedule.ID.Hex(),
		SlotID:          slot.ID,
		ScheduledTime:   slot.SlotTime,
		Status:          models.AppointmentActive,
		PatientName:     intent.PatientName,
		PatientEmail:    intent.PatientEmail,
		PatientPhone:    intent.PatientPhone,
		Reason:          intent.Reason,
		ConsultationFee: intent.ConsultationFee,
		OrderID:         intent.OrderID,
		VideoRoomID:     roomID,
		VideoToken:      token,
	}, nil
}

func (uc *bookingUsecase) sendConfirmationEmail(ctx context.Context, appointment *models.Appointment) {
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
		uc.Log.Error("bookingUsecase.sendConfirmationEmail error publishing email",
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
