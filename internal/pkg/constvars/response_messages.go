package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule-related messages
	CreateScheduleSuccessMessage = "availability schedule created successfully"
	GetScheduleSuccessMessage    = "get schedules successfully"
	GetFreeSlotsSuccessMessage   = "get free slots successfully"
	UpdatePeriodSuccessMessage   = "availability period updated successfully"
	DeletePeriodSuccessMessage   = "availability period deleted successfully"

	// Appointment-related messages
	CreateAppointmentSuccessMessage = "appointment successfully created"
	GetAppointmentSuccessMessage    = "get appointments successfully"
	CancelAppointmentSuccessMessage = "appointment cancelled and slot released"

	// Booking-related messages
	InitiatePaymentSuccessMessage = "payment initiated, redirect the patient to the gateway"
	ConfirmPaymentSuccessMessage  = "payment confirmed and appointment created"
	WebhookAcceptedMessage        = "payment notification accepted"
)
