package models

import "time"

// StagedBookingIntent is the cache-resident record of an appointment's
// intended details, created when payment is initiated and consumed exactly
// once on confirmation. It never reaches the primary store; eviction by TTL
// means the payment was abandoned (or confirmed too late).
type StagedBookingIntent struct {
	OrderID         string    `json:"order_id"`
	DoctorID        string    `json:"doctor_id"`
	PatientID       string    `json:"patient_id"`
	SlotID          string    `json:"slot_id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	PatientPhone    string    `json:"patient_phone"`
	Reason          string    `json:"reason"`
	ConsultationFee float64   `json:"consultation_fee"`
	StagedAt        time.Time `json:"staged_at"`
}
