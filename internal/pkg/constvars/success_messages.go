package constvars

const (
	ResponseUnknown = "unknown"

	GetDaysSuccessMessage         = "get days successfully"
	GetAppointmentsSuccessMessage = "get appointments successfully"
	GetInterviewersSuccessMessage = "get interviewers successfully"
	UploadAvatarSuccessMessage    = "avatar uploaded successfully"
	ResetScheduleSuccessMessage   = "schedule reset successfully"
)
