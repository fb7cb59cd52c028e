package utils

import (
	"errors"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/dto/responses"
	"interview-scheduler/internal/pkg/exceptions"
	"net/http"
	"sync/atomic"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var exposeErrorDetails atomic.Bool

// ExposeErrorDetails controls whether dev messages and caller locations are
// written into error responses. It is switched off in production.
func ExposeErrorDetails(enabled bool) {
	exposeErrorDetails.Store(enabled)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes err as the JSON error envelope. Client errors log
// at warn level and server errors at error level, each as a single entry.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	fields := []zap.Field{zap.Error(err)}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		fields = append(fields, zap.Any("locations", customErr.Locations))
		if exposeErrorDetails.Load() {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	}
	fields = append(fields, zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode))

	if response.StatusCode >= constvars.StatusInternalServerError {
		log.Error(response.ClientMessage, fields...)
	} else {
		log.Warn(response.ClientMessage, fields...)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(response.StatusCode)
	json.NewEncoder(w).Encode(response)
}

func BuildNoContentResponse(w http.ResponseWriter) {
	w.WriteHeader(constvars.StatusNoContent)
}
