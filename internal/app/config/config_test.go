package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		internalConfig := NewInternalConfig()

		assert.Equal(t, "v1", internalConfig.App.Version)
		assert.Equal(t, 5, internalConfig.Schedule.LockExpiryInSeconds)
		assert.Equal(t, "appointment_events", internalConfig.RabbitMQ.AppointmentEventsQueue)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("APP_PORT", ":9999")
		t.Setenv("SCHEDULE_DAYS_CACHE_TTL_IN_SECONDS", "15")
		t.Setenv("CLIENT_API_BASE_URL", "http://scheduler.internal/api/v1")

		internalConfig := NewInternalConfig()

		assert.Equal(t, ":9999", internalConfig.App.Port)
		assert.Equal(t, 15, internalConfig.Schedule.DaysCacheTTLInSeconds)
		assert.Equal(t, "http://scheduler.internal/api/v1", internalConfig.Client.APIBaseURL)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MINIO_USE_SSL", "true")

	driverConfig := NewDriverConfig()

	assert.Equal(t, 3, driverConfig.Redis.DB)
	assert.True(t, driverConfig.Minio.UseSSL)
	assert.Equal(t, "scheduler", driverConfig.MongoDB.DbName)
}
