package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceDays         = "days"
	ResourceAppointments = "appointments"
	ResourceInterviewers = "interviewers"
)

const (
	MongoCollectionDays         = "days"
	MongoCollectionAppointments = "appointments"
	MongoCollectionInterviewers = "interviewers"
)

const (
	RedisKeyScheduleDays      = "schedule:days"
	RedisKeyAppointmentLockFn = "schedule:appointment:%d:lock"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentCancelled = "appointment.cancelled"
)

// MaxStudentNameLength must match the max tag on requests.Interview.Student.
const MaxStudentNameLength = 120

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
	AppDefaultDay     = "Monday"
)

const (
	URLParamAppointmentID = "appointmentID"
	URLParamInterviewerID = "interviewerID"
	FormFieldAvatar       = "avatar"
)
