package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"

	LoggingAppointmentIDKey = "appointment_id"
	LoggingInterviewerIDKey = "interviewer_id"
	LoggingDayKey           = "day"
	LoggingSlotStatusKey    = "slot_status"
	LoggingEventKey         = "event"
	LoggingQueueKey         = "queue"
	LoggingObjectKey        = "object_key"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
