package schedules

import (
	"context"
	"testing"
	"time"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeScheduleRepository struct {
	schedules      map[string]*models.Schedule
	updatedPeriod  *models.AvailabilityPeriod
	updatedSlots   []models.Slot
	deletedPeriods []string
}

func newFakeScheduleRepository() *fakeScheduleRepository {
	return &fakeScheduleRepository{schedules: make(map[string]*models.Schedule)}
}

func (r *fakeScheduleRepository) Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	schedule.ID = primitive.NewObjectID()
	r.schedules[schedule.ID.Hex()] = schedule
	return schedule, nil
}

func (r *fakeScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	schedule, ok := r.schedules[scheduleID]
	if !ok {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return schedule, nil
}

func (r *fakeScheduleRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	var result []models.Schedule
	for _, schedule := range r.schedules {
		if schedule.DoctorID == doctorID {
			result = append(result, *schedule)
		}
	}
	return result, nil
}

func (r *fakeScheduleRepository) FindBookableSlot(ctx context.Context, doctorID, slotID string) (*models.Schedule, *models.Slot, error) {
	return nil, nil, exceptions.ErrSlotNotFound(nil)
}

func (r *fakeScheduleRepository) BookSlotWithAppointment(ctx context.Context, scheduleID, slotID string, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (r *fakeScheduleRepository) ReleaseSlot(ctx context.Context, doctorID, slotID string) error {
	return nil
}

func (r *fakeScheduleRepository) UpdatePeriod(ctx context.Context, scheduleID string, period models.AvailabilityPeriod, slots []models.Slot) error {
	schedule, ok := r.schedules[scheduleID]
	if !ok {
		return exceptions.ErrScheduleNotFound(nil)
	}
	r.updatedPeriod = &period
	r.updatedSlots = slots

	for i := range schedule.Periods {
		if schedule.Periods[i].ID == period.ID {
			schedule.Periods[i] = period
		}
	}
	kept := schedule.Slots[:0]
	for _, slot := range schedule.Slots {
		if slot.PeriodID != period.ID {
			kept = append(kept, slot)
		}
	}
	schedule.Slots = append(kept, slots...)
	return nil
}

func (r *fakeScheduleRepository) DeletePeriod(ctx context.Context, scheduleID, periodID string) error {
	schedule, ok := r.schedules[scheduleID]
	if !ok {
		return exceptions.ErrScheduleNotFound(nil)
	}
	r.deletedPeriods = append(r.deletedPeriods, periodID)

	periods := schedule.Periods[:0]
	for _, period := range schedule.Periods {
		if period.ID != periodID {
			periods = append(periods, period)
		}
	}
	schedule.Periods = periods

	slots := schedule.Slots[:0]
	for _, slot := range schedule.Slots {
		if slot.PeriodID != periodID {
			slots = append(slots, slot)
		}
	}
	schedule.Slots = slots
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

type scheduleFixture struct {
	usecase   *scheduleUsecase
	schedules *fakeScheduleRepository
	session   *fakeSessionService
}

func newScheduleFixture() *scheduleFixture {
	schedules := newFakeScheduleRepository()
	session := &fakeSessionService{session: &models.Session{UserID: "user-1", DoctorID: "doctor-1"}}
	return &scheduleFixture{
		usecase: &scheduleUsecase{
			ScheduleRepository: schedules,
			SessionService:     session,
			Log:                zap.NewNop(),
		},
		schedules: schedules,
		session:   session,
	}
}

func createRequest(periods ...requests.AvailabilityPeriodRequest) *requests.CreateScheduleRequest {
	return &requests.CreateScheduleRequest{
		Periods:         periods,
		ConsultationFee: 2500,
	}
}

func morningPeriod() requests.AvailabilityPeriodRequest {
	return requests.AvailabilityPeriodRequest{
		Day:             "2024-05-20",
		Start:           "09:00",
		End:             "10:00",
		DurationMinutes: 30,
	}
}

func TestCreateAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Materializes Slots From The Period", func(t *testing.T) {
		fixture := newScheduleFixture()

		result, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "doctor-1", result.DoctorID)
		assert.Equal(t, float64(2500), result.ConsultationFee)
		require.Len(t, result.Periods, 1)
		require.Len(t, result.Slots, 2, "a one-hour window at thirty minutes yields two slots")

		assert.Equal(t, result.Periods[0].ID, result.Slots[0].PeriodID)
		assert.Equal(t, "09:00", result.Slots[0].SlotTime.Format("15:04"))
		assert.Equal(t, "09:30", result.Slots[1].SlotTime.Format("15:04"))
		assert.False(t, result.Slots[0].IsBooked)
		assert.False(t, result.Slots[1].IsBooked)
	})

	t.Run("Rejects Non Doctor Sessions", func(t *testing.T) {
		fixture := newScheduleFixture()
		fixture.session.session = &models.Session{UserID: "user-2", PatientID: "patient-1"}

		_, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.Error(t, err)
		assert.Empty(t, fixture.schedules.schedules)
	})

	t.Run("Rejects A Period Overlapping An Existing Schedule", func(t *testing.T) {
		fixture := newScheduleFixture()
		_, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		overlapping := morningPeriod()
		overlapping.Start = "09:30"
		overlapping.End = "10:30"
		_, err = fixture.usecase.CreateAvailability(ctx, "{}", createRequest(overlapping))
		assert.True(t, exceptions.HasCode(err, exceptions.CodeScheduleOverlap))
		assert.Len(t, fixture.schedules.schedules, 1)
	})

	t.Run("Rejects Overlap Within One Submission", func(t *testing.T) {
		fixture := newScheduleFixture()

		second := morningPeriod()
		second.Start = "09:45"
		second.End = "11:00"
		_, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod(), second))
		assert.True(t, exceptions.HasCode(err, exceptions.CodeScheduleOverlap))
	})

	t.Run("Adjacent Periods Are Accepted", func(t *testing.T) {
		fixture := newScheduleFixture()

		afternoon := morningPeriod()
		afternoon.Start = "10:00"
		afternoon.End = "11:00"
		result, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod(), afternoon))
		require.NoError(t, err)
		assert.Len(t, result.Slots, 4)
	})

	t.Run("Rejects An Inverted Period", func(t *testing.T) {
		fixture := newScheduleFixture()

		inverted := morningPeriod()
		inverted.Start = "10:00"
		inverted.End = "09:00"
		_, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(inverted))
		require.Error(t, err)
	})
}

func TestListFreeSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Only Open Slots For The Date Sorted By Time", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		// Book the earlier slot directly in the stored aggregate.
		stored := fixture.schedules.schedules[created.ID]
		stored.Slots[0].IsBooked = true

		date, err := time.Parse("2006-01-02", "2024-05-20")
		require.NoError(t, err)
		slots, err := fixture.usecase.ListFreeSlots(ctx, "doctor-1", date)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:30", slots[0].SlotTime.Format("15:04"))
		assert.False(t, slots[0].IsBooked)
	})

	t.Run("Other Dates Yield Nothing", func(t *testing.T) {
		fixture := newScheduleFixture()
		_, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		date, err := time.Parse("2006-01-02", "2024-05-21")
		require.NoError(t, err)
		slots, err := fixture.usecase.ListFreeSlots(ctx, "doctor-1", date)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Unknown Doctors Yield Nothing", func(t *testing.T) {
		fixture := newScheduleFixture()

		date, err := time.Parse("2006-01-02", "2024-05-20")
		require.NoError(t, err)
		slots, err := fixture.usecase.ListFreeSlots(ctx, "doctor-ghost", date)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestUpdatePeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces The Period And Its Slots", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)
		periodID := created.Periods[0].ID

		updated, err := fixture.usecase.UpdatePeriod(ctx, "{}", created.ID, periodID, &requests.UpdatePeriodRequest{
			Day:             "2024-05-20",
			Start:           "09:00",
			End:             "11:00",
			DurationMinutes: 30,
		})
		require.NoError(t, err)
		require.Len(t, updated.Periods, 1)
		assert.Equal(t, periodID, updated.Periods[0].ID, "the period keeps its identity")
		require.Len(t, updated.Slots, 4)
		for _, slot := range updated.Slots {
			assert.Equal(t, periodID, slot.PeriodID)
		}
	})

	t.Run("The New Window May Not Overlap Another Period", func(t *testing.T) {
		fixture := newScheduleFixture()
		afternoon := morningPeriod()
		afternoon.Start = "11:00"
		afternoon.End = "12:00"
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod(), afternoon))
		require.NoError(t, err)

		_, err = fixture.usecase.UpdatePeriod(ctx, "{}", created.ID, created.Periods[0].ID, &requests.UpdatePeriodRequest{
			Day:             "2024-05-20",
			Start:           "09:00",
			End:             "11:30",
			DurationMinutes: 30,
		})
		assert.True(t, exceptions.HasCode(err, exceptions.CodeScheduleOverlap))
	})

	t.Run("Unknown Periods Fail", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		_, err = fixture.usecase.UpdatePeriod(ctx, "{}", created.ID, "period-ghost", &requests.UpdatePeriodRequest{
			Day:             "2024-05-20",
			Start:           "09:00",
			End:             "10:00",
			DurationMinutes: 30,
		})
		assert.True(t, exceptions.HasCode(err, exceptions.CodePeriodNotFound))
	})

	t.Run("Another Doctors Schedule Is Off Limits", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		fixture.session.session = &models.Session{UserID: "user-2", DoctorID: "doctor-2"}
		_, err = fixture.usecase.UpdatePeriod(ctx, "{}", created.ID, created.Periods[0].ID, &requests.UpdatePeriodRequest{
			Day:             "2024-05-20",
			Start:           "09:00",
			End:             "10:00",
			DurationMinutes: 30,
		})
		require.Error(t, err)
	})
}

func TestDeletePeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("Destroys The Period With Its Slots", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)
		periodID := created.Periods[0].ID

		err = fixture.usecase.DeletePeriod(ctx, "{}", created.ID, periodID)
		require.NoError(t, err)

		stored := fixture.schedules.schedules[created.ID]
		assert.Empty(t, stored.Periods)
		assert.Empty(t, stored.Slots)
	})

	t.Run("Other Periods Keep Their Slots", func(t *testing.T) {
		fixture := newScheduleFixture()
		afternoon := morningPeriod()
		afternoon.Start = "11:00"
		afternoon.End = "12:00"
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod(), afternoon))
		require.NoError(t, err)

		err = fixture.usecase.DeletePeriod(ctx, "{}", created.ID, created.Periods[0].ID)
		require.NoError(t, err)

		stored := fixture.schedules.schedules[created.ID]
		require.Len(t, stored.Periods, 1)
		require.Len(t, stored.Slots, 2)
		for _, slot := range stored.Slots {
			assert.Equal(t, stored.Periods[0].ID, slot.PeriodID)
		}
	})

	t.Run("Only The Owner May Delete", func(t *testing.T) {
		fixture := newScheduleFixture()
		created, err := fixture.usecase.CreateAvailability(ctx, "{}", createRequest(morningPeriod()))
		require.NoError(t, err)

		fixture.session.session = &models.Session{UserID: "user-2", DoctorID: "doctor-2"}
		err = fixture.usecase.DeletePeriod(ctx, "{}", created.ID, created.Periods[0].ID)
		require.Error(t, err)

		stored := fixture.schedules.schedules[created.ID]
		assert.Len(t, stored.Periods, 1)
	})
}
