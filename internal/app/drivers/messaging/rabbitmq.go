package messaging

import (
	"fmt"
	"interview-scheduler/internal/app/config"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker that receives appointment change events.
func NewRabbitMQ(driverConfig *config.DriverConfig, logger *zap.Logger) *amqp091.Connection {
	uri := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   fmt.Sprintf("%s:%s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}

	dialConfig := amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: amqp091.NewConnectionProperties(),
	}
	dialConfig.Properties.SetClientConnectionName("interview-scheduler")

	conn, err := amqp091.DialConfig(uri.String(), dialConfig)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
	}

	logger.Info("Connected to RabbitMQ", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn
}
