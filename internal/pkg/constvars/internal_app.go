package constvars

type ContextKey string

const (
	ResourceSchedules    = "schedules"
	ResourceAppointments = "appointments"
	ResourceBookings     = "bookings"
	ResourceWebhooks     = "webhooks"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNBK_SVC_"
)

const (
	ClinicbookRoleGuest   = "Guest"
	ClinicbookRolePatient = "Patient"
	ClinicbookRoleDoctor  = "Doctor"
	ClinicbookRoleAdmin   = "Admin"
)

const (
	AppointmentVideoRoomPrefix = "appointment-"
)

const (
	AppDateLayout     = "2006-01-02"
	AppDateTimeLayout = "2006-01-02 15:04"
)
