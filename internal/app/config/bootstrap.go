package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the drivers shared by every component of the HTTP server.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes the drivers in reverse dependency order. Every driver is
// closed even when an earlier one fails; the failures are joined.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	closers := []struct {
		name  string
		close func() error
	}{
		{"RabbitMQ", b.RabbitMQ.Close},
		{"Redis", b.Redis.Close},
		{"MongoDB", func() error { return b.MongoDB.Disconnect(ctx) }},
	}

	var errs []error
	for _, c := range closers {
		if err := c.close(); err != nil {
			b.Logger.Error("Failed to close driver", zap.String("driver", c.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		b.Logger.Info("Closed driver", zap.String("driver", c.name))
	}

	// Sync on stdout/stderr returns EINVAL on some platforms.
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
