package responses

import "time"

type AvailabilityPeriod struct {
	ID              string    `json:"id"`
	Day             time.Time `json:"day"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type Slot struct {
	ID       string    `json:"id"`
	PeriodID string    `json:"period_id"`
	Day      time.Time `json:"day"`
	SlotTime time.Time `json:"slot_time"`
	IsBooked bool      `json:"is_booked"`
}

type Schedule struct {
	ID              string               `json:"id"`
	DoctorID        string               `json:"doctor_id"`
	ConsultationFee float64              `json:"consultation_fee"`
	Periods         []AvailabilityPeriod `json:"periods"`
	Slots           []Slot               `json:"slots"`
}
