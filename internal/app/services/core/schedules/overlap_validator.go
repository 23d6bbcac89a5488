package schedules

import (
	"fmt"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
)

// PeriodsOverlap reports whether two availability periods on the same day
// share any time. Intervals are half-open, so a period ending exactly when
// another starts does not overlap.
func PeriodsOverlap(a, b models.AvailabilityPeriod) bool {
	if utils.DateKey(a.Day) != utils.DateKey(b.Day) {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ValidateNoOverlap rejects candidate periods that collide with each other or
// with any of the doctor's existing periods. Candidates excluded by id are
// skipped, which lets an update compare against everything but the period
// being replaced.
func ValidateNoOverlap(existing []models.AvailabilityPeriod, candidates []models.AvailabilityPeriod, excludePeriodID string) error {
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if PeriodsOverlap(candidates[i], candidates[j]) {
				return exceptions.ErrScheduleOverlap(fmt.Errorf("submitted periods %d and %d overlap", i, j))
			}
		}
	}

	for _, candidate := range candidates {
		for _, period := range existing {
			if period.ID == excludePeriodID {
				continue
			}
			if PeriodsOverlap(candidate, period) {
				return exceptions.ErrScheduleOverlap(fmt.Errorf("period overlaps existing period %s", period.ID))
			}
		}
	}
	return nil
}
