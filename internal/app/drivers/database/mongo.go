package database

import (
	"context"
	"fmt"
	"interview-scheduler/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoDB connects and pings the primary. The schedule is small and
// read-heavy, so a modest pool is enough.
func NewMongoDB(driverConfig *config.DriverConfig, logger *zap.Logger) *mongo.Client {
	uri := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("interview-scheduler").
		SetMaxPoolSize(20).
		SetConnectTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("Failed to ping MongoDB primary", zap.Error(err))
	}

	logger.Info("Connected to MongoDB",
		zap.String("host", driverConfig.MongoDB.Host),
		zap.String("database", driverConfig.MongoDB.DbName),
	)
	return client
}
