package constvars

// ValidationMessages maps a validator tag to the client message shown after
// the field path. A %s is replaced by the tag's parameter.
var ValidationMessages = map[string]string{
	"required":  "is required",
	"not_blank": "must not be blank",
	"max":       "must be at most %s characters long",
	"gt":        "must be greater than %s",
}

// Slot-scoped messages shown by the appointment state controller
const (
	ErrClientCouldNotBookAppointment   = "Could not book appointment."
	ErrClientCouldNotCancelAppointment = "Could not cancel appointment."
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientInterviewerNotFound           = "interviewer not found"
	ErrClientAvatarNotFound                = "interviewer has no avatar"
	ErrClientAppointmentIsEmpty            = "there is no interview booked in this appointment"
	ErrClientAppointmentBusy               = "this appointment is being changed, please try again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientAvatarTooLarge                = "avatar file is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus     = "unexpected HTTP status %d from %s"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevAvatarTooLarge           = "avatar exceeds the %d MB upload limit"
	ErrDevTooManyRequests          = "rate limit exceeded for %s"
	ErrDevPanicRecovered           = "panic recovered while serving request"
	ErrDevResetNotAllowed          = "schedule reset is disabled in production"
	ErrDevSeedRead                 = "failed to read seed file '%s'"
	ErrDevSeedParse                = "failed to parse seed file '%s'"
	ErrDevSeedInvalid              = "seed data is inconsistent"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Usecase messages
	ErrDevAppointmentNotExists = "appointment %d not exists in our system"
	ErrDevInterviewerNotExists = "interviewer %d not exists in our system"
	ErrDevAvatarNotExists      = "interviewer %d has no avatar"
	ErrDevAppointmentIsEmpty   = "appointment %d has no interview to cancel"
	ErrDevAppointmentLocked    = "appointment %d is locked by another writer"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data from redis with key '%s'"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"
)
