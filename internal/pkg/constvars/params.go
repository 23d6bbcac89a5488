package constvars

const (
	URLParamScheduleID    = "schedule_id"
	URLParamPeriodID      = "period_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamDoctorID = "doctor_id"
	URLQueryParamDate     = "date"
	URLQueryParamOrderID  = "order_id"
)
