package contracts

import (
	"context"
	"time"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

// ScheduleRepository owns the schedule aggregate. FindBookableSlot scans all
// of a doctor's schedules for the slot; BookSlotWithAppointment is the single
// transaction that flips the slot and persists the appointment together.
type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Schedule, error)
	FindBookableSlot(ctx context.Context, doctorID, slotID string) (*models.Schedule, *models.Slot, error)
	BookSlotWithAppointment(ctx context.Context, scheduleID, slotID string, appointment *models.Appointment) (*models.Appointment, error)
	ReleaseSlot(ctx context.Context, doctorID, slotID string) error
	UpdatePeriod(ctx context.Context, scheduleID string, period models.AvailabilityPeriod, slots []models.Slot) error
	DeletePeriod(ctx context.Context, scheduleID, periodID string) error
}

type ScheduleUsecase interface {
	CreateAvailability(ctx context.Context, sessionData string, request *requests.CreateScheduleRequest) (*responses.Schedule, error)
	FindByDoctor(ctx context.Context, sessionData string) ([]responses.Schedule, error)
	ListFreeSlots(ctx context.Context, doctorID string, date time.Time) ([]responses.Slot, error)
	UpdatePeriod(ctx context.Context, sessionData, scheduleID, periodID string, request *requests.UpdatePeriodRequest) (*responses.Schedule, error)
	DeletePeriod(ctx context.Context, sessionData, scheduleID, periodID string) error
}
