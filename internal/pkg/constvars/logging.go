package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"

	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingScheduleIDKey    = "schedule_id"
	LoggingPeriodIDKey      = "period_id"
	LoggingSlotIDKey        = "slot_id"
	LoggingSlotCountKey     = "slot_count"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingOrderIDKey       = "order_id"
	LoggingAttemptKey       = "attempt"
	LoggingPaymentStatusKey = "payment_status"
	LoggingRedisKey         = "redis_key"
	LoggingRecipientKey     = "recipient"
)
