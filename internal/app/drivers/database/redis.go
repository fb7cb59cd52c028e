package database

import (
	"context"
	"interview-scheduler/internal/app/config"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(driverConfig *config.DriverConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	logger.Info("Connected to Redis", zap.String("addr", client.Options().Addr))
	return client
}
