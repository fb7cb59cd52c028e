package controllers

import (
	"context"
	"errors"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/dto/requests"
	"interview-scheduler/internal/pkg/exceptions"
	"interview-scheduler/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) FindAllDays(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.FindAllDays")
	if !ok {
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAllDays(ctx)
	if err != nil {
		ctrl.fail(w, "AppointmentController.FindAllDays", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAllDays succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDaysSuccessMessage, result)
}

func (ctrl *AppointmentController) FindAllAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.FindAllAppointments")
	if !ok {
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAllAppointments(ctx)
	if err != nil {
		ctrl.fail(w, "AppointmentController.FindAllAppointments", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAllAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) FindAllInterviewers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.FindAllInterviewers")
	if !ok {
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAllInterviewers(ctx)
	if err != nil {
		ctrl.fail(w, "AppointmentController.FindAllInterviewers", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAllInterviewers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInterviewersSuccessMessage, result)
}

func (ctrl *AppointmentController) BookInterview(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.BookInterview")
	if !ok {
		return
	}

	appointmentID, err := utils.ParseIntURLParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.BookInterview)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.BookInterview error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	err = ctrl.AppointmentUsecase.BookInterview(ctx, appointmentID, request)
	if err != nil {
		ctrl.fail(w, "AppointmentController.BookInterview", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.BookInterview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildNoContentResponse(w)
}

func (ctrl *AppointmentController) CancelInterview(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.CancelInterview")
	if !ok {
		return
	}

	appointmentID, err := utils.ParseIntURLParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	err = ctrl.AppointmentUsecase.CancelInterview(ctx, appointmentID)
	if err != nil {
		ctrl.fail(w, "AppointmentController.CancelInterview", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelInterview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	utils.BuildNoContentResponse(w)
}

// RedirectAvatar sends the client to the interviewer's avatar, presigned
// when it lives in object storage.
func (ctrl *AppointmentController) RedirectAvatar(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.RedirectAvatar")
	if !ok {
		return
	}

	interviewerID, err := utils.ParseIntURLParam(r, constvars.URLParamInterviewerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamInterviewerID))
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	avatarURL, err := ctrl.AppointmentUsecase.FindAvatarURL(ctx, interviewerID)
	if err != nil {
		ctrl.fail(w, "AppointmentController.RedirectAvatar", requestID, err)
		return
	}
	if avatarURL == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAvatarNotExist(nil, interviewerID))
		return
	}

	http.Redirect(w, r, avatarURL, constvars.StatusTemporaryRedirect)
}

func (ctrl *AppointmentController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.UploadAvatar")
	if !ok {
		return
	}

	interviewerID, err := utils.ParseIntURLParam(r, constvars.URLParamInterviewerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamInterviewerID))
		return
	}

	limitInMB := ctrl.InternalConfig.Schedule.AvatarMaxUploadSizeInMB
	r.Body = http.MaxBytesReader(w, r.Body, limitInMB<<20)
	err = r.ParseMultipartForm(limitInMB << 20)
	if err != nil {
		ctrl.Log.Error("AppointmentController.UploadAvatar error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAvatarTooLarge(err, limitInMB))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldAvatar)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType != constvars.MIMEImagePNG && contentType != constvars.MIMEImageJPEG {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(nil))
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UploadAvatar(ctx, interviewerID, file, header.Size, header.Filename, contentType)
	if err != nil {
		ctrl.fail(w, "AppointmentController.UploadAvatar", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInterviewerIDKey, interviewerID),
		zap.String(constvars.LoggingObjectKey, result.ObjectKey),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAvatarSuccessMessage, result)
}

func (ctrl *AppointmentController) ResetSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AppointmentController.ResetSchedule")
	if !ok {
		return
	}

	ctx, cancel := ctrl.withTimeout(r.Context())
	defer cancel()

	err := ctrl.AppointmentUsecase.ResetSchedule(ctx)
	if err != nil {
		ctrl.fail(w, "AppointmentController.ResetSchedule", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ResetSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetScheduleSuccessMessage, nil)
}

func (ctrl *AppointmentController) requestID(w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func (ctrl *AppointmentController) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

func (ctrl *AppointmentController) fail(w http.ResponseWriter, operation, requestID string, err error) {
	ctrl.Log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
