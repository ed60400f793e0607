package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"oneof":         "must be one of [%s]",
	"len":           "must be %s characters long",
	"time_hhmm":     "must be a valid 24-hour time in HH:MM format",
	"date_ymd":      "must be a valid date in YYYY-MM-DD format",
	"slot_duration": "must be between 15 and 120 minutes",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients. One stable, distinct message per failure kind
// so API consumers can branch on them.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"

	ErrClientAppointmentPastDate    = "appointments cannot be booked in the past"
	ErrClientDoctorUnavailable      = "this doctor is not available for bookings"
	ErrClientOutsideBusinessHours   = "the requested time is outside the doctor's working hours"
	ErrClientPatientNotFound        = "patient record not found"
	ErrClientSlotTaken              = "the requested slot is already taken, please pick another one"
	ErrClientSlotLocked             = "the requested slot is being booked by someone else, please retry"
	ErrClientInvalidStateTransition = "this appointment can no longer be changed"
	ErrClientStorageUnavailable     = "the booking service is temporarily unavailable, please retry"
	ErrClientDoctorNotFound         = "doctor not found"
	ErrClientAppointmentNotFound    = "appointment not found"
	ErrClientScheduleNotFound       = "this doctor has no published schedule"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseTime          = "cannot parse the requested time"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing the request"
	ErrDevMissingRequestID         = "request id not found in request context"
	ErrDevMissingSession           = "session not found in request context"
	ErrDevURLParamValidationFailed = "invalid url parameter: %s"
	ErrDevQueryParamRequired       = "missing required query parameter: %s"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod        = "unexpected jwt signing method"
	ErrDevAuthInvalidSession       = "session not found or already expired"
	ErrDevAuthRoleNotAllowed       = "session role is not allowed for this endpoint"

	ErrDevAppointmentInPast      = "requested date-time is not after current time"
	ErrDevDoctorNotFound         = "doctor document does not exist"
	ErrDevDoctorNotEligible      = "doctor is missing, not approved, or not a doctor role"
	ErrDevOutsideBusinessHours   = "requested time does not fall inside the doctor's working window"
	ErrDevPatientNotFound        = "patient document does not exist"
	ErrDevSlotTaken              = "an active appointment already occupies the requested window"
	ErrDevSlotLocked             = "booking lock for the slot is held by another request"
	ErrDevInvalidStateTransition = "appointment status transition is not permitted"
	ErrDevAppointmentNotFound    = "appointment document does not exist"
	ErrDevScheduleNotFound       = "doctor has no weekly availability document"

	ErrDevDBFailedToFindDocument     = "failed to find document in mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo cursor"
	ErrDevDBNotObjectID              = "given string cannot be converted to mongo ObjectID"
	ErrDevDBUnavailable              = "mongo database did not respond within the storage timeout"

	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevQueuePublish = "failed to publish message to notification queue"
)
