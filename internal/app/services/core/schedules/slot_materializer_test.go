package schedules

import (
	"testing"
	"time"

	"clinicbook-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPeriodForTest(day string, startClock, endClock string, durationMinutes int) models.AvailabilityPeriod {
	dayTime, _ := time.Parse("2006-01-02", day)
	start, _ := time.Parse("2006-01-02 15:04", day+" "+startClock)
	end, _ := time.Parse("2006-01-02 15:04", day+" "+endClock)
	return models.AvailabilityPeriod{
		ID:              "period-1",
		Day:             dayTime,
		Start:           start,
		End:             end,
		DurationMinutes: durationMinutes,
	}
}

func TestMaterializeSlots(t *testing.T) {
	t.Run("One Hour Window With 30 Minute Slots", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "09:00", "10:00", 30)

		slots := MaterializeSlots(period)

		require.Len(t, slots, 2)
		assert.Equal(t, period.Start, slots[0].SlotTime)
		assert.Equal(t, period.Start.Add(30*time.Minute), slots[1].SlotTime)
	})

	t.Run("Trailing Remainder Is Dropped", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "09:00", "10:10", 30)

		slots := MaterializeSlots(period)

		require.Len(t, slots, 2, "the 10 minute remainder should not yield a slot")
	})

	t.Run("Period Shorter Than Duration Yields No Slots", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "09:00", "09:20", 30)

		slots := MaterializeSlots(period)

		assert.Empty(t, slots)
	})

	t.Run("Exact Fit Fills The Whole Window", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "08:00", "12:00", 60)

		slots := MaterializeSlots(period)

		require.Len(t, slots, 4)
		for i, slot := range slots {
			assert.Equal(t, period.Start.Add(time.Duration(i)*time.Hour), slot.SlotTime, "slots should be laid back to back")
			assert.False(t, slot.IsBooked, "materialized slots start open")
			assert.Equal(t, period.ID, slot.PeriodID)
			assert.NotEmpty(t, slot.ID)
		}
	})

	t.Run("Slot IDs Are Unique", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "09:00", "17:00", 15)

		slots := MaterializeSlots(period)

		seen := make(map[string]bool, len(slots))
		for _, slot := range slots {
			assert.False(t, seen[slot.ID], "slot id %s repeated", slot.ID)
			seen[slot.ID] = true
		}
	})

	t.Run("Non Positive Duration Yields No Slots", func(t *testing.T) {
		period := buildPeriodForTest("2024-05-20", "09:00", "10:00", 0)

		slots := MaterializeSlots(period)

		assert.Empty(t, slots)
	})
}
