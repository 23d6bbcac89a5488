package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeScheduleRepository struct {
	mu         sync.Mutex
	schedule   *models.Schedule
	slot       *models.Slot
	findErr    error
	releaseErr error
	released   []string
}

func (r *fakeScheduleRepository) Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	return schedule, nil
}

func (r *fakeScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	return r.schedule, nil
}

func (r *fakeScheduleRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	return nil, nil
}

func (r *fakeScheduleRepository) FindBookableSlot(ctx context.Context, doctorID, slotID string) (*models.Schedule, *models.Slot, error) {
	if r.findErr != nil {
		return nil, nil, r.findErr
	}
	return r.schedule, r.slot, nil
}

// BookSlotWithAppointment mimics the guarded transactional flip: the first
// caller wins, everyone after gets the unavailable error.
func (r *fakeScheduleRepository) BookSlotWithAppointment(ctx context.Context, scheduleID, slotID string, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slot.IsBooked {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}
	r.slot.IsBooked = true
	appointment.ID = primitive.NewObjectID()
	return appointment, nil
}

func (r *fakeScheduleRepository) ReleaseSlot(ctx context.Context, doctorID, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.releaseErr != nil {
		return r.releaseErr
	}
	r.slot.IsBooked = false
	r.released = append(r.released, slotID)
	return nil
}

func (r *fakeScheduleRepository) UpdatePeriod(ctx context.Context, scheduleID string, period models.AvailabilityPeriod, slots []models.Slot) error {
	return nil
}

func (r *fakeScheduleRepository) DeletePeriod(ctx context.Context, scheduleID, periodID string) error {
	return nil
}

type fakeAppointmentRepository struct {
	byID       map[string]*models.Appointment
	byPatient  map[string][]models.Appointment
	byDoctor   map[string][]models.Appointment
	deletedIDs []string
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{
		byID:      make(map[string]*models.Appointment),
		byPatient: make(map[string][]models.Appointment),
		byDoctor:  make(map[string][]models.Appointment),
	}
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := r.byID[appointmentID]
	if !ok {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (r *fakeAppointmentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.byPatient[patientID], nil
}

func (r *fakeAppointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.byDoctor[doctorID], nil
}

func (r *fakeAppointmentRepository) Delete(ctx context.Context, appointmentID string) error {
	if _, ok := r.byID[appointmentID]; !ok {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	delete(r.byID, appointmentID)
	r.deletedIDs = append(r.deletedIDs, appointmentID)
	return nil
}

type fakeSessionService struct {
	session *models.Session
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return s.session, nil
}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

type fakeVideoCredentialService struct{}

func (v *fakeVideoCredentialService) RoomIDForSlot(slotID string) string {
	return "appointment-" + slotID
}

func (v *fakeVideoCredentialService) MintCredential(roomID, uid, role string) (string, error) {
	return "video-token-" + uid, nil
}

type fakeMailerService struct {
	mu   sync.Mutex
	sent []*requests.EmailPayload
}

func (m *fakeMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, request)
	return nil
}

func (m *fakeMailerService) ValidateEmail(email string) bool {
	return email != ""
}

type appointmentFixture struct {
	usecase      *appointmentUsecase
	appointments *fakeAppointmentRepository
	schedules    *fakeScheduleRepository
	session      *fakeSessionService
	mailer       *fakeMailerService
}

func newAppointmentFixture() *appointmentFixture {
	slotTime := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)
	slot := &models.Slot{
		ID:       "slot-1",
		PeriodID: "period-1",
		Day:      slotTime.Truncate(24 * time.Hour),
		SlotTime: slotTime,
	}
	schedule := &models.Schedule{
		ID:              primitive.NewObjectID(),
		DoctorID:        "doctor-1",
		ConsultationFee: 2500,
		Slots:           []models.Slot{*slot},
	}

	appointments := newFakeAppointmentRepository()
	schedules := &fakeScheduleRepository{schedule: schedule, slot: slot}
	session := &fakeSessionService{session: &models.Session{UserID: "user-1", PatientID: "patient-1"}}
	mailer := &fakeMailerService{}

	usecase := &appointmentUsecase{
		AppointmentRepository:  appointments,
		ScheduleRepository:     schedules,
		SessionService:         session,
		VideoCredentialService: &fakeVideoCredentialService{},
		MailerService:          mailer,
		InternalConfig: &config.InternalConfig{
			App: config.App{MailerEmailSender: "noreply@clinic.example"},
		},
		Log: zap.NewNop(),
	}

	return &appointmentFixture{
		usecase:      usecase,
		appointments: appointments,
		schedules:    schedules,
		session:      session,
		mailer:       mailer,
	}
}

func bookDirectRequest() *requests.BookDirectRequest {
	return &requests.BookDirectRequest{
		DoctorID:     "doctor-1",
		SlotID:       "slot-1",
		PatientName:  "Nimal Perera",
		PatientEmail: "nimal@example.com",
		PatientPhone: "+94771234567",
		Reason:       "follow-up",
	}
}

func TestBookDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("Books The Slot And Mints The Video Credential", func(t *testing.T) {
		fixture := newAppointmentFixture()

		result, err := fixture.usecase.BookDirect(ctx, "{}", bookDirectRequest())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "patient-1", result.PatientID, "patient id must come from the session")
		assert.Equal(t, "slot-1", result.SlotID)
		assert.Equal(t, string(models.AppointmentActive), result.Status)
		assert.Equal(t, float64(2500), result.ConsultationFee)
		assert.Empty(t, result.OrderID, "direct bookings carry no payment order")
		assert.Equal(t, "appointment-slot-1", result.VideoRoomID)
		assert.Equal(t, "video-token-patient-1", result.VideoToken)
		assert.True(t, fixture.schedules.slot.IsBooked)
		require.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, []string{"nimal@example.com"}, fixture.mailer.sent[0].To)
	})

	t.Run("Rejects Non Patient Sessions", func(t *testing.T) {
		fixture := newAppointmentFixture()
		fixture.session.session = &models.Session{UserID: "user-2", DoctorID: "doctor-1"}

		_, err := fixture.usecase.BookDirect(ctx, "{}", bookDirectRequest())
		require.Error(t, err)
		assert.False(t, fixture.schedules.slot.IsBooked)
	})

	t.Run("Surfaces An Unavailable Slot", func(t *testing.T) {
		fixture := newAppointmentFixture()
		fixture.schedules.findErr = exceptions.ErrSlotUnavailable(nil)

		_, err := fixture.usecase.BookDirect(ctx, "{}", bookDirectRequest())
		assert.True(t, exceptions.HasCode(err, exceptions.CodeSlotUnavailable))
	})

	t.Run("Concurrent Bookings Produce A Single Winner", func(t *testing.T) {
		fixture := newAppointmentFixture()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = fixture.usecase.BookDirect(ctx, "{}", bookDirectRequest())
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.True(t, exceptions.HasCode(err, exceptions.CodeSlotUnavailable))
			}
		}
		assert.Equal(t, 1, winners, "exactly one booking must claim the slot")
	})
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Patients See Their Own Appointments", func(t *testing.T) {
		fixture := newAppointmentFixture()
		fixture.appointments.byPatient["patient-1"] = []models.Appointment{
			{ID: primitive.NewObjectID(), PatientID: "patient-1", SlotID: "slot-1"},
			{ID: primitive.NewObjectID(), PatientID: "patient-1", SlotID: "slot-2"},
		}

		result, err := fixture.usecase.FindAll(ctx, "{}")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "slot-1", result[0].SlotID)
	})

	t.Run("Doctors See Their Own Appointments", func(t *testing.T) {
		fixture := newAppointmentFixture()
		fixture.session.session = &models.Session{UserID: "user-2", DoctorID: "doctor-1"}
		fixture.appointments.byDoctor["doctor-1"] = []models.Appointment{
			{ID: primitive.NewObjectID(), DoctorID: "doctor-1", SlotID: "slot-1"},
		}

		result, err := fixture.usecase.FindAll(ctx, "{}")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "doctor-1", result[0].DoctorID)
	})

	t.Run("Sessions Without An Identity Are Rejected", func(t *testing.T) {
		fixture := newAppointmentFixture()
		fixture.session.session = &models.Session{UserID: "user-3"}

		_, err := fixture.usecase.FindAll(ctx, "{}")
		require.Error(t, err)
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	booked := func(fixture *appointmentFixture) *models.Appointment {
		fixture.schedules.slot.IsBooked = true
		appointment := &models.Appointment{
			ID:        primitive.NewObjectID(),
			DoctorID:  "doctor-1",
			PatientID: "patient-1",
			SlotID:    "slot-1",
			Status:    models.AppointmentActive,
		}
		fixture.appointments.byID[appointment.ID.Hex()] = appointment
		return appointment
	}

	t.Run("Reopens The Slot And Removes The Appointment", func(t *testing.T) {
		fixture := newAppointmentFixture()
		appointment := booked(fixture)

		err := fixture.usecase.CancelAppointment(ctx, "{}", appointment.ID.Hex())
		require.NoError(t, err)
		assert.False(t, fixture.schedules.slot.IsBooked)
		assert.Contains(t, fixture.schedules.released, "slot-1")
		assert.Contains(t, fixture.appointments.deletedIDs, appointment.ID.Hex())
	})

	t.Run("The Owning Doctor May Cancel", func(t *testing.T) {
		fixture := newAppointmentFixture()
		appointment := booked(fixture)
		fixture.session.session = &models.Session{UserID: "user-2", DoctorID: "doctor-1"}

		err := fixture.usecase.CancelAppointment(ctx, "{}", appointment.ID.Hex())
		require.NoError(t, err)
	})

	t.Run("Strangers May Not Cancel", func(t *testing.T) {
		fixture := newAppointmentFixture()
		appointment := booked(fixture)
		fixture.session.session = &models.Session{UserID: "user-9", PatientID: "patient-9"}

		err := fixture.usecase.CancelAppointment(ctx, "{}", appointment.ID.Hex())
		require.Error(t, err)
		assert.True(t, fixture.schedules.slot.IsBooked, "the slot must stay booked")
		assert.Empty(t, fixture.appointments.deletedIDs)
	})

	t.Run("A Missing Slot Is Logged And The Cancellation Completes", func(t *testing.T) {
		fixture := newAppointmentFixture()
		appointment := booked(fixture)
		fixture.schedules.releaseErr = exceptions.ErrSlotNotFound(nil)
		core, logs := observer.New(zap.WarnLevel)
		fixture.usecase.Log = zap.New(core)

		err := fixture.usecase.CancelAppointment(ctx, "{}", appointment.ID.Hex())
		require.NoError(t, err, "the inconsistency must not block the cancellation")
		assert.Contains(t, fixture.appointments.deletedIDs, appointment.ID.Hex())
		assert.Equal(t, 1, logs.FilterMessage("appointmentUsecase.CancelAppointment slot missing on release").Len(),
			"the inconsistency must be reported")
	})

	t.Run("Unknown Appointments Fail", func(t *testing.T) {
		fixture := newAppointmentFixture()

		err := fixture.usecase.CancelAppointment(ctx, "{}", primitive.NewObjectID().Hex())
		assert.True(t, exceptions.HasCode(err, exceptions.CodeAppointmentNotFound))
	})
}
