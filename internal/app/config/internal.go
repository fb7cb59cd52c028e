package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Schedule AppSchedule `mapstructure:"schedule"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Client   AppClient   `mapstructure:"client"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// WriteRequestsPerSecond and WriteBurst shape the per-IP limiter on
	// appointment writes; WriteBlockTimeInSeconds is how long an offender waits.
	WriteRequestsPerSecond  int `mapstructure:"write_requests_per_second"`
	WriteBurst              int `mapstructure:"write_burst"`
	WriteBlockTimeInSeconds int `mapstructure:"write_block_time_in_seconds"`
}

// AppSchedule holds knobs for the appointment write path.
type AppSchedule struct {
	DaysCacheTTLInSeconds   int    `mapstructure:"days_cache_ttl_in_seconds"`
	LockExpiryInSeconds     int    `mapstructure:"lock_expiry_in_seconds"`
	SeedDirectory           string `mapstructure:"seed_directory"`
	AvatarURLExpiryInHours  int    `mapstructure:"avatar_url_expiry_in_hours"`
	AvatarMaxUploadSizeInMB int64  `mapstructure:"avatar_max_upload_size_in_mb"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}

type AppRabbitMQ struct {
	AppointmentEventsQueue string `mapstructure:"appointment_events_queue"`
}

// AppClient configures the appointment state controller and its HTTP data service.
type AppClient struct {
	APIBaseURL           string `mapstructure:"api_base_url"`
	CallTimeoutInSeconds int    `mapstructure:"call_timeout_in_seconds"`
}
