package utils

import (
	"context"
	"errors"
	"interview-scheduler/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimedStep(t *testing.T) {
	t.Run("Success logs at debug", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		err := TimedStep(zap.New(core), "replace schedule", "req-1", func() error { return nil })

		require.NoError(t, err)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
		assert.Equal(t, "replace schedule", entry.ContextMap()[constvars.LoggingOperationKey])
		assert.Equal(t, true, entry.ContextMap()[constvars.LoggingSuccessKey])
	})

	t.Run("Failure is returned unchanged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		boom := errors.New("boom")

		err := TimedStep(zap.New(core), "replace schedule", "req-1", func() error { return boom })

		assert.Same(t, boom, err)
		require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	})
}

func TestLogAppointmentEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	LogAppointmentEvent(zap.New(core), constvars.EventAppointmentBooked, "req-2", 7, zap.Int(constvars.LoggingInterviewerIDKey, 3))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, constvars.EventAppointmentBooked, fields[constvars.LoggingEventKey])
	assert.Equal(t, int64(7), fields[constvars.LoggingAppointmentIDKey])
	assert.Equal(t, int64(3), fields[constvars.LoggingInterviewerIDKey])
	assert.Equal(t, "req-2", fields[constvars.LoggingRequestIDKey])
}

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "abc")

	assert.Equal(t, "abc", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}
