package responses

import "time"

type Appointment struct {
	ID              string    `json:"id,omitempty"`
	Status          string    `json:"status,omitempty"`
	DoctorID        string    `json:"doctor_id,omitempty"`
	PatientID       string    `json:"patient_id,omitempty"`
	PatientName     string    `json:"patient_name,omitempty"`
	SlotID          string    `json:"slot_id,omitempty"`
	ScheduledTime   time.Time `json:"scheduled_time,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	ConsultationFee float64   `json:"consultation_fee,omitempty"`
	OrderID         string    `json:"order_id,omitempty"`
	VideoRoomID     string    `json:"video_room_id,omitempty"`
	VideoToken      string    `json:"video_token,omitempty"`
}
