package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilityPeriod is one doctor-declared contiguous window on a given day
// from which bookable slots are generated.
type AvailabilityPeriod struct {
	ID              string    `json:"id" bson:"id"`
	Day             time.Time `json:"day" bson:"day"`
	Start           time.Time `json:"start" bson:"start"`
	End             time.Time `json:"end" bson:"end"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
}

// Slot is one discrete fixed-duration bookable unit. It never exists outside
// its parent period and is destroyed with it.
type Slot struct {
	ID       string    `json:"id" bson:"id"`
	PeriodID string    `json:"period_id" bson:"period_id"`
	Day      time.Time `json:"day" bson:"day"`
	SlotTime time.Time `json:"slot_time" bson:"slot_time"`
	IsBooked bool      `json:"is_booked" bson:"is_booked"`
}

// Schedule is the aggregate root owning one doctor's availability periods and
// their flattened slots. All slot mutations go through it; the transaction
// boundary for booking is the schedule document plus the appointment insert.
type Schedule struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	DoctorID        string               `json:"doctor_id" bson:"doctor_id"`
	ConsultationFee float64              `json:"consultation_fee" bson:"consultation_fee"`
	Periods         []AvailabilityPeriod `json:"periods" bson:"periods"`
	Slots           []Slot               `json:"slots" bson:"slots"`
	CreatedAt       time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at" bson:"updated_at"`
}

// FindSlot returns the embedded slot with the given id, or nil.
func (s *Schedule) FindSlot(slotID string) *Slot {
	for i := range s.Slots {
		if s.Slots[i].ID == slotID {
			return &s.Slots[i]
		}
	}
	return nil
}

// FindPeriod returns the embedded availability period with the given id, or nil.
func (s *Schedule) FindPeriod(periodID string) *AvailabilityPeriod {
	for i := range s.Periods {
		if s.Periods[i].ID == periodID {
			return &s.Periods[i]
		}
	}
	return nil
}
