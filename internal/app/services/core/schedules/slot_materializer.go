package schedules

import (
	"time"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/utils"
)

// MaterializeSlots cuts an availability period into fixed-duration slots.
// Slots are laid back to back from the period start; a trailing remainder
// shorter than the duration is dropped. A period shorter than one duration
// yields no slots.
func MaterializeSlots(period models.AvailabilityPeriod) []models.Slot {
	duration := time.Duration(period.DurationMinutes) * time.Minute
	if duration <= 0 {
		return nil
	}

	var slots []models.Slot
	for start := period.Start; !start.Add(duration).After(period.End); start = start.Add(duration) {
		slots = append(slots, models.Slot{
			ID:       utils.GenerateSlotID(),
			PeriodID: period.ID,
			Day:      period.Day,
			SlotTime: start,
			IsBooked: false,
		})
	}
	return slots
}
