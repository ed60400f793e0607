package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingSessionDataKey      = "session_data"
	LoggingResponseLengthKey   = "response_length"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentTimeKey  = "appointment_time"
	LoggingSlotCountKey        = "slot_count"
	LoggingDateKey             = "date"
	LoggingDayOfWeekKey        = "day_of_week"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingNotificationKey     = "notification"
	LoggingQueueNameKey        = "queue_name"
	LoggingAppointmentCountKey = "appointment_count"
)
