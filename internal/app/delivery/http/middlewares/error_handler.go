package middlewares

import (
	"fmt"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/exceptions"
	"interview-scheduler/internal/pkg/utils"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so net/http can abort the response as intended.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			m.Log.Error("Recovered from handler panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
		}()
		next.ServeHTTP(w, r)
	})
}
