package exceptions

// Machine-readable codes for the booking conflict taxonomy. Callers branch on
// these with HasCode instead of matching message strings.
const (
	CodeScheduleNotFound        = "SCHEDULE_NOT_FOUND"
	CodeSlotNotFound            = "SLOT_NOT_FOUND"
	CodeSlotUnavailable         = "SLOT_UNAVAILABLE"
	CodeScheduleOverlap         = "SCHEDULE_OVERLAP"
	CodeHasBookedSlots          = "HAS_BOOKED_SLOTS"
	CodePeriodNotFound          = "PERIOD_NOT_FOUND"
	CodeAppointmentNotFound     = "APPOINTMENT_NOT_FOUND"
	CodeStagingExpired          = "STAGING_EXPIRED"
	CodePaymentSignatureInvalid = "PAYMENT_SIGNATURE_INVALID"
	CodeBookingRetryExhausted   = "BOOKING_RETRY_EXHAUSTED"
	CodeVideoCredentialMint     = "VIDEO_CREDENTIAL_MINT_FAILED"
)
