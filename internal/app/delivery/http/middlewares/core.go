package middlewares

import (
	"context"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logging writes one entry per request once the handler returns. Server
// errors log at error level so they stand out from rejected client input.
func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Int(constvars.LoggingResponseLengthKey, ww.BytesWritten()),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
		}

		if status >= http.StatusInternalServerError {
			m.Log.Error("Request failed", fields...)
			return
		}
		m.Log.Info("Request served", fields...)
	})
}

// RequestIDMiddleware keeps a client supplied X-Request-ID or generates one.
// The id is echoed on the response and forwarded to downstream calls.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
