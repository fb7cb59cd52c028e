package appointments

import (
	"context"
	"fmt"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/dto/requests"
	"interview-scheduler/internal/pkg/dto/responses"
	"interview-scheduler/internal/pkg/exceptions"
	"interview-scheduler/internal/pkg/utils"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	RedisRepository       contracts.RedisRepository
	LockService           contracts.LockerService
	EventPublisher        contracts.EventPublisher
	Storage               contracts.Storage
	SeedSource            contracts.SeedSource
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	storage contracts.Storage,
	seedSource contracts.SeedSource,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		RedisRepository:       redisRepository,
		LockService:           lockService,
		EventPublisher:        eventPublisher,
		Storage:               storage,
		SeedSource:            seedSource,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// FindAllDays returns every day with its spots derived from the current
// appointments. The result is cached until the next write.
func (uc *appointmentUsecase) FindAllDays(ctx context.Context) ([]responses.Day, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAllDays called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyScheduleDays)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllDays error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cached != "" {
		var days []responses.Day
		err = json.Unmarshal([]byte(cached), &days)
		if err == nil {
			uc.Log.Info("appointmentUsecase.FindAllDays served from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("day_count", len(days)),
			)
			return days, nil
		}
		uc.Log.Warn("appointmentUsecase.FindAllDays discarding unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	days, err := uc.AppointmentRepository.FindAllDays(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllDays error fetching days from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointments, err := uc.AppointmentRepository.FindAllAppointments(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllDays error fetching appointments from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Day, len(days))
	for i, eachDay := range days {
		response[i] = eachDay.ConvertIntoResponse(appointments)
	}

	ttl := time.Duration(uc.InternalConfig.Schedule.DaysCacheTTLInSeconds) * time.Second
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyScheduleDays, response, ttl)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.FindAllDays error caching days in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.FindAllDays succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("day_count", len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindAllAppointments(ctx context.Context) (map[int]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAllAppointments(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllAppointments error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make(map[int]responses.Appointment, len(appointments))
	for id, eachAppointment := range appointments {
		response[id] = eachAppointment.ConvertIntoResponse()
	}

	uc.Log.Info("appointmentUsecase.FindAllAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("appointment_count", len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindAllInterviewers(ctx context.Context) (map[int]responses.Interviewer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAllInterviewers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	interviewers, err := uc.AppointmentRepository.FindAllInterviewers(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllInterviewers error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make(map[int]responses.Interviewer, len(interviewers))
	for id, eachInterviewer := range interviewers {
		avatarURL, err := uc.resolveAvatarURL(ctx, eachInterviewer.Avatar)
		if err != nil {
			uc.Log.Error("appointmentUsecase.FindAllInterviewers error resolving avatar",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingInterviewerIDKey, id),
				zap.Error(err),
			)
			return nil, err
		}
		response[id] = eachInterviewer.ConvertIntoResponse(avatarURL)
	}

	uc.Log.Info("appointmentUsecase.FindAllInterviewers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("interviewer_count", len(response)),
	)
	return response, nil
}

// BookInterview creates or replaces the interview of an appointment while
// holding the appointment's write lock.
func (uc *appointmentUsecase) BookInterview(ctx context.Context, appointmentID int, request *requests.BookInterview) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookInterview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookInterview validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}
	interview := &models.Interview{
		Student:     strings.TrimSpace(request.Interview.Student),
		Interviewer: request.Interview.Interviewer,
	}

	interviewer, err := uc.AppointmentRepository.FindInterviewerByID(ctx, interview.Interviewer)
	if err != nil {
		return err
	}
	if interviewer == nil {
		uc.Log.Error("appointmentUsecase.BookInterview interviewer not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingInterviewerIDKey, interview.Interviewer),
		)
		return exceptions.ErrInterviewerNotExist(nil, interview.Interviewer)
	}

	release, err := uc.acquireAppointmentLock(ctx, appointmentID)
	if err != nil {
		return err
	}
	defer release()

	current, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if current == nil {
		uc.Log.Error("appointmentUsecase.BookInterview appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return exceptions.ErrAppointmentNotExist(nil, appointmentID)
	}

	err = uc.AppointmentRepository.UpdateInterview(ctx, appointmentID, interview)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookInterview error updating appointment in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidateDaysCache(ctx)

	eventType := constvars.EventAppointmentBooked
	if current.IsBooked() {
		eventType = constvars.EventAppointmentUpdated
	}
	uc.publish(ctx, &contracts.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointmentID,
		Student:       interview.Student,
		InterviewerID: interview.Interviewer,
	})

	utils.LogAppointmentEvent(uc.Log, eventType, requestID, appointmentID,
		zap.Int(constvars.LoggingInterviewerIDKey, interview.Interviewer),
	)
	return nil
}

func (uc *appointmentUsecase) CancelInterview(ctx context.Context, appointmentID int) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelInterview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	release, err := uc.acquireAppointmentLock(ctx, appointmentID)
	if err != nil {
		return err
	}
	defer release()

	current, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.ErrAppointmentNotExist(nil, appointmentID)
	}
	if !current.IsBooked() {
		uc.Log.Error("appointmentUsecase.CancelInterview appointment is empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return exceptions.ErrAppointmentIsEmpty(nil, appointmentID)
	}

	err = uc.AppointmentRepository.UpdateInterview(ctx, appointmentID, nil)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelInterview error clearing appointment in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidateDaysCache(ctx)

	uc.publish(ctx, &contracts.AppointmentEvent{
		Type:          constvars.EventAppointmentCancelled,
		AppointmentID: appointmentID,
		Student:       current.Interview.Student,
		InterviewerID: current.Interview.Interviewer,
	})

	utils.LogAppointmentEvent(uc.Log, constvars.EventAppointmentCancelled, requestID, appointmentID)
	return nil
}

func (uc *appointmentUsecase) FindAvatarURL(ctx context.Context, interviewerID int) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAvatarURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInterviewerIDKey, interviewerID),
	)

	interviewer, err := uc.AppointmentRepository.FindInterviewerByID(ctx, interviewerID)
	if err != nil {
		return "", err
	}
	if interviewer == nil {
		return "", exceptions.ErrInterviewerNotExist(nil, interviewerID)
	}

	return uc.resolveAvatarURL(ctx, interviewer.Avatar)
}

func (uc *appointmentUsecase) UploadAvatar(ctx context.Context, interviewerID int, file io.Reader, size int64, fileName, contentType string) (*responses.AvatarUpload, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInterviewerIDKey, interviewerID),
	)

	interviewer, err := uc.AppointmentRepository.FindInterviewerByID(ctx, interviewerID)
	if err != nil {
		return nil, err
	}
	if interviewer == nil {
		return nil, exceptions.ErrInterviewerNotExist(nil, interviewerID)
	}

	objectKey, err := uc.Storage.UploadObject(ctx, file, size, utils.GenerateAvatarObjectKey(interviewerID, fileName), contentType)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UploadAvatar error uploading to Minio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.AppointmentRepository.UpdateInterviewerAvatar(ctx, interviewerID, objectKey)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInterviewerIDKey, interviewerID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return &responses.AvatarUpload{InterviewerID: interviewerID, ObjectKey: objectKey}, nil
}

// ResetSchedule restores the seed schedule. It refuses to run in production.
func (uc *appointmentUsecase) ResetSchedule(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ResetSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.InternalConfig.App.Env == constvars.AppEnvProduction {
		return exceptions.ErrResetNotAllowed(nil)
	}

	schedule, err := uc.SeedSource.LoadSeed(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ResetSchedule error loading seed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = utils.TimedStep(uc.Log, "appointmentUsecase.ResetSchedule replace schedule", requestID, func() error {
		return uc.AppointmentRepository.ReplaceSchedule(ctx, schedule)
	})
	if err != nil {
		return err
	}
	uc.invalidateDaysCache(ctx)

	uc.Log.Info("appointmentUsecase.ResetSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("day_count", len(schedule.Days)),
	)
	return nil
}

func (uc *appointmentUsecase) acquireAppointmentLock(ctx context.Context, appointmentID int) (func(), error) {
	requestID := utils.GetRequestID(ctx)
	key := fmt.Sprintf(constvars.RedisKeyAppointmentLockFn, appointmentID)
	expiry := time.Duration(uc.InternalConfig.Schedule.LockExpiryInSeconds) * time.Second

	acquired, token, err := uc.LockService.TryLock(ctx, key, expiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("appointmentUsecase.acquireAppointmentLock appointment is busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrAppointmentLocked(nil, appointmentID)
	}

	return func() {
		// The request context may already be done; the lock must still go.
		err := uc.LockService.Unlock(context.WithoutCancel(ctx), key, token)
		if err != nil {
			uc.Log.Error("appointmentUsecase.acquireAppointmentLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

// invalidateDaysCache drops the cached day list. A failure only leaves the
// cache stale until its TTL, so it is logged and not returned.
func (uc *appointmentUsecase) invalidateDaysCache(ctx context.Context) {
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyScheduleDays)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.invalidateDaysCache error deleting cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyScheduleDays),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) publish(ctx context.Context, event *contracts.AppointmentEvent) {
	event.RequestID = utils.GetRequestID(ctx)
	event.OccurredAt = time.Now().UTC()

	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Error("appointmentUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventKey, event.Type),
			zap.Error(err),
		)
	}
}

// resolveAvatarURL returns stored URLs as they are and presigns object keys.
func (uc *appointmentUsecase) resolveAvatarURL(ctx context.Context, avatar string) (string, error) {
	if avatar == "" || strings.HasPrefix(avatar, "http://") || strings.HasPrefix(avatar, "https://") {
		return avatar, nil
	}
	expiry := time.Duration(uc.InternalConfig.Schedule.AvatarURLExpiryInHours) * time.Hour
	return uc.Storage.GetObjectPresignedURL(ctx, avatar, expiry)
}
