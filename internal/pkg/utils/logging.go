package utils

import (
	"context"
	"time"

	"interview-scheduler/internal/pkg/constvars"

	"go.uber.org/zap"
)

// TimedStep runs fn and logs how long it took. Successful steps log at debug
// level; failures log at error level and return fn's error unchanged.
func TimedStep(logger *zap.Logger, step string, requestID string, fn func() error) error {
	start := time.Now()
	err := fn()

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, step),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error("Step failed", append(fields, zap.Error(err))...)
		return err
	}

	logger.Debug("Step completed", fields...)
	return nil
}

// LogAppointmentEvent records a committed change to an appointment slot.
func LogAppointmentEvent(logger *zap.Logger, event string, requestID string, appointmentID int, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	}
	allFields = append(allFields, fields...)

	logger.Info("Appointment changed", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
