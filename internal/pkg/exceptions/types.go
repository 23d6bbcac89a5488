package exceptions

import (
	"clinicbook-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildRequest)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, "invalid URL parameter "+paramName)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleTypeDoesntMatch)
	}
	ErrParseSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevServerParseSession)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBStringNotObjectID)
	}
	ErrMongoDBTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBTransactionFailed)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet+" key "+redisKey)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, "failed to send email via SMTP client hostname "+hostname)
	}
)

// Scheduling and booking conflicts carry a Code so usecases and tests can
// branch without string matching.
var (
	ErrScheduleNotFound = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusNotFound, CodeScheduleNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevScheduleNotFound)
	}
	ErrSlotNotFound = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusNotFound, CodeSlotNotFound, constvars.ErrClientSlotNotFound, constvars.ErrDevSlotNotFound)
	}
	ErrSlotUnavailable = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, CodeSlotUnavailable, constvars.ErrClientSlotUnavailable, constvars.ErrDevSlotUnavailable)
	}
	ErrScheduleOverlap = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, CodeScheduleOverlap, constvars.ErrClientScheduleOverlap, constvars.ErrDevScheduleOverlap)
	}
	ErrHasBookedSlots = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, CodeHasBookedSlots, constvars.ErrClientHasBookedSlots, constvars.ErrDevHasBookedSlots)
	}
	ErrPeriodNotFound = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusNotFound, CodePeriodNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevPeriodNotFound)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusNotFound, CodeAppointmentNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotFound)
	}
	ErrStagingExpired = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusGone, CodeStagingExpired, constvars.ErrClientStagingExpired, constvars.ErrDevStagingExpired)
	}
	ErrPaymentSignatureInvalid = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusBadRequest, CodePaymentSignatureInvalid, constvars.ErrClientPaymentRejected, constvars.ErrDevPaymentSignature)
	}
	ErrBookingRetryExhausted = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusConflict, CodeBookingRetryExhausted, constvars.ErrClientBookingNotCommitted, constvars.ErrDevBookingRetryExhausted)
	}
	ErrVideoCredentialMint = func(err error) *CustomError {
		return BuildNewCustomErrorWithCode(err, constvars.StatusInternalServerError, CodeVideoCredentialMint, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevVideoCredentialMint)
	}
)
