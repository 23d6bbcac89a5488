package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentActive    AppointmentStatus = "active"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is created once a slot is claimed. ScheduledTime is copied from
// the slot at booking time and immutable thereafter. OrderID is set only for
// gateway-confirmed bookings and is unique when present, which makes duplicate
// payment confirmations collide at the storage layer as well.
type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorID        string             `json:"doctor_id" bson:"doctor_id"`
	PatientID       string             `json:"patient_id" bson:"patient_id"`
	ScheduleID      string             `json:"schedule_id" bson:"schedule_id"`
	SlotID          string             `json:"slot_id" bson:"slot_id"`
	ScheduledTime   time.Time          `json:"scheduled_time" bson:"scheduled_time"`
	Status          AppointmentStatus  `json:"status" bson:"status"`
	PatientName     string             `json:"patient_name" bson:"patient_name"`
	PatientEmail    string             `json:"patient_email" bson:"patient_email"`
	PatientPhone    string             `json:"patient_phone" bson:"patient_phone"`
	Reason          string             `json:"reason" bson:"reason"`
	ConsultationFee float64            `json:"consultation_fee" bson:"consultation_fee"`
	OrderID         string             `json:"order_id,omitempty" bson:"order_id,omitempty"`
	VideoRoomID     string             `json:"video_room_id" bson:"video_room_id"`
	VideoToken      string             `json:"video_token" bson:"video_token"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
