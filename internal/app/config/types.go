package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}
	MongoDB struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		DbName   string `mapstructure:"db_name"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_filename"`
		OutputErrorFileName string `mapstructure:"output_error_filename"`
	}
	RabbitMQ struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Minio struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseSSL   bool   `mapstructure:"use_ssl"`
	}
)
