package requests

type BookDirectRequest struct {
	DoctorID     string `json:"doctor_id" validate:"required"`
	SlotID       string `json:"slot_id" validate:"required"`
	PatientName  string `json:"patient_name" validate:"required"`
	PatientEmail string `json:"patient_email" validate:"required,email"`
	PatientPhone string `json:"patient_phone" validate:"required"`
	Reason       string `json:"reason"`

	// Resolved from the session, never taken from the body.
	PatientID string `json:"-"`
}
