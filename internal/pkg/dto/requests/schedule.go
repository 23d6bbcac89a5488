package requests

// AvailabilityPeriodRequest is one window in a create-availability submission.
// Start and End are "15:04" wall-clock times on Day.
type AvailabilityPeriodRequest struct {
	Day             string `json:"day" validate:"required,datetime=2006-01-02"`
	Start           string `json:"start" validate:"required,datetime=15:04"`
	End             string `json:"end" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

type CreateScheduleRequest struct {
	Periods         []AvailabilityPeriodRequest `json:"periods" validate:"required,min=1,dive"`
	ConsultationFee float64                     `json:"consultation_fee" validate:"required,gt=0"`
}

type UpdatePeriodRequest struct {
	Day             string `json:"day" validate:"required,datetime=2006-01-02"`
	Start           string `json:"start" validate:"required,datetime=15:04"`
	End             string `json:"end" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}
