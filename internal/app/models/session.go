package models

// Session is the identity resolved by the upstream identity provider, cached
// in redis and attached to the request context by the auth middleware.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PatientID string `json:"patient_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
}

func (s *Session) IsPatient() bool {
	return s.PatientID != ""
}

func (s *Session) IsNotPatient() bool {
	return !s.IsPatient()
}

func (s *Session) IsDoctor() bool {
	return s.DoctorID != ""
}

func (s *Session) IsNotDoctor() bool {
	return !s.IsDoctor()
}
