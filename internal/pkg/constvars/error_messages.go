package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"datetime": "must match the %s layout",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please slow down"

	ErrClientScheduleNotFound    = "schedule not found"
	ErrClientSlotNotFound        = "the requested time slot does not exist"
	ErrClientSlotUnavailable     = "the requested time slot is already booked"
	ErrClientScheduleOverlap     = "the availability period overlaps an existing one"
	ErrClientHasBookedSlots      = "cannot delete/update: booked appointments exist"
	ErrClientAppointmentNotFound = "appointment not found"
	ErrClientStagingExpired      = "payment confirmation window expired, please contact support for reconciliation"
	ErrClientPaymentRejected     = "payment notification rejected"
	ErrClientBookingNotCommitted = "booking could not be committed, please verify with your order reference"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm          = "cannot parse form-encoded body"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different type"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSessionData       = "session data missing from context"
	ErrDevTooManyRequests          = "request rejected by rate limiter"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"

	// Authentication messages
	ErrDevAuthSigningMethod  = "Unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenExpired   = "token expired"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBStringNotObjectID      = "given ID is not valid object ID"
	ErrDevDBTransactionFailed      = "database transaction failed"

	// Redis messages
	ErrDevRedisSet           = "failed to set value into redis"
	ErrDevRedisGet           = "failed to get value from redis"
	ErrDevRedisDelete        = "failed to delete value from redis"
	ErrDevRedisStoreSession  = "Failed to store session data into redis"
	ErrDevServerParseSession = "failed to parse session data"

	// Scheduling messages
	ErrDevScheduleNotFound  = "schedule not found for the given doctor"
	ErrDevSlotNotFound      = "slot not found across the doctor's schedules"
	ErrDevSlotUnavailable   = "slot already booked"
	ErrDevScheduleOverlap   = "candidate availability period overlaps an existing period"
	ErrDevHasBookedSlots    = "availability period still owns booked slots"
	ErrDevPeriodNotFound    = "availability period not found on schedule"

	// Booking messages
	ErrDevAppointmentNotFound    = "appointment not found"
	ErrDevStagingExpired         = "staged booking intent absent from cache"
	ErrDevBookingRetryExhausted  = "confirm retries exhausted on transient transaction conflicts"
	ErrDevPaymentSignature       = "payment notification signature mismatch"
	ErrDevPaymentStatusUnhandled = "unhandled payment status code"
	ErrDevVideoCredentialMint    = "failed to mint video room credential"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
