package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, file io.Reader, size int64, objectKey, contentType string) (string, error)
	GetObjectPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
