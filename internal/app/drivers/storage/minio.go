package storage

import (
	"context"
	"interview-scheduler/internal/app/config"
	"net"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio returns a client for the avatar bucket, creating the bucket on
// first start.
func NewMinio(driverConfig *config.DriverConfig, bucketName string, logger *zap.Logger) *minio.Client {
	client, err := minio.New(net.JoinHostPort(driverConfig.Minio.Host, driverConfig.Minio.Port), &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize MinIO client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		logger.Fatal("Failed to check avatar bucket", zap.String("bucket", bucketName), zap.Error(err))
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			logger.Fatal("Failed to create avatar bucket", zap.String("bucket", bucketName), zap.Error(err))
		}
		logger.Info("Created avatar bucket", zap.String("bucket", bucketName))
	}

	logger.Info("Connected to MinIO", zap.String("endpoint", client.EndpointURL().Host))
	return client
}
