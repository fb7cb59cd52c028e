package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// newViper binds every key to its upper-snake env var, so "app.port" is read
// from APP_PORT. Defaults must be registered for Unmarshal to see a key.
func newViper(defaults map[string]interface{}) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewDriverConfig() *DriverConfig {
	v := newViper(map[string]interface{}{
		"mongodb.port":                 "27017",
		"mongodb.host":                 "localhost",
		"mongodb.db_name":              "scheduler",
		"mongodb.username":             "defaultUsername",
		"mongodb.password":             "defaultPassword",
		"redis.host":                   "localhost",
		"redis.port":                   "6379",
		"redis.password":               "",
		"redis.db":                     0,
		"logger.level":                 "debug",
		"logger.output_filename":       "logger.log",
		"logger.output_error_filename": "logger_error.log",
		"rabbitmq.port":                "5672",
		"rabbitmq.host":                "localhost",
		"rabbitmq.username":            "guest",
		"rabbitmq.password":            "guest",
		"minio.port":                   "9000",
		"minio.host":                   "localhost",
		"minio.username":               "minioadmin",
		"minio.password":               "minioadmin",
		"minio.use_ssl":                false,
	})

	driverConfig := new(DriverConfig)
	err := v.Unmarshal(driverConfig)
	if err != nil {
		log.Fatalf("Failed to load driver config: %v", err)
	}
	return driverConfig
}

func NewInternalConfig() *InternalConfig {
	v := newViper(map[string]interface{}{
		"app.env":                               "development",
		"app.port":                              ":8001",
		"app.version":                           "v1",
		"app.timezone":                          "UTC",
		"app.endpoint_prefix":                   "api",
		"app.max_requests":                      50,
		"app.shutdown_timeout_in_seconds":       10,
		"app.request_timeout_in_seconds":        10,
		"app.request_body_limit_in_megabyte":    6,
		"app.write_requests_per_second":         5,
		"app.write_burst":                       10,
		"app.write_block_time_in_seconds":       30,
		"schedule.days_cache_ttl_in_seconds":    60,
		"schedule.lock_expiry_in_seconds":       5,
		"schedule.seed_directory":               "cmd/migration/data",
		"schedule.avatar_url_expiry_in_hours":   24,
		"schedule.avatar_max_upload_size_in_mb": 2,
		"minio.bucket_name":                     "interviewer-avatars",
		"rabbitmq.appointment_events_queue":     "appointment_events",
		"client.api_base_url":                   "http://localhost:8001/api/v1",
		"client.call_timeout_in_seconds":        10,
	})

	internalConfig := new(InternalConfig)
	err := v.Unmarshal(internalConfig)
	if err != nil {
		log.Fatalf("Failed to load internal config: %v", err)
	}
	return internalConfig
}
