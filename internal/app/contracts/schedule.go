package contracts

import (
	"context"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/dto/requests"
	"interview-scheduler/internal/pkg/dto/responses"
	"io"
)

// ScheduleDataService is the remote collaborator of the appointment state
// controller. A failure carries no structured payload the controller relies on.
type ScheduleDataService interface {
	LoadSchedule(ctx context.Context) (*models.Schedule, error)
	SaveInterview(ctx context.Context, appointmentID int, interview models.Interview) error
	DeleteInterview(ctx context.Context, appointmentID int) error
}

type AppointmentUsecase interface {
	FindAllDays(ctx context.Context) ([]responses.Day, error)
	FindAllAppointments(ctx context.Context) (map[int]responses.Appointment, error)
	FindAllInterviewers(ctx context.Context) (map[int]responses.Interviewer, error)
	BookInterview(ctx context.Context, appointmentID int, request *requests.BookInterview) error
	CancelInterview(ctx context.Context, appointmentID int) error
	FindAvatarURL(ctx context.Context, interviewerID int) (string, error)
	UploadAvatar(ctx context.Context, interviewerID int, file io.Reader, size int64, fileName, contentType string) (*responses.AvatarUpload, error)
	ResetSchedule(ctx context.Context) error
}

type AppointmentRepository interface {
	FindAllDays(ctx context.Context) ([]models.Day, error)
	FindAllAppointments(ctx context.Context) (map[int]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID int) (*models.Appointment, error)
	FindAllInterviewers(ctx context.Context) (map[int]models.Interviewer, error)
	FindInterviewerByID(ctx context.Context, interviewerID int) (*models.Interviewer, error)
	UpdateInterview(ctx context.Context, appointmentID int, interview *models.Interview) error
	UpdateInterviewerAvatar(ctx context.Context, interviewerID int, avatar string) error
	ReplaceSchedule(ctx context.Context, schedule *models.Schedule) error
}

// SeedSource yields the initial schedule used by the migration command and
// by the debug reset endpoint.
type SeedSource interface {
	LoadSeed(ctx context.Context) (*models.Schedule, error)
}
