package locker

import (
	"context"
	"errors"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/exceptions"
	"interview-scheduler/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errLockLost = errors.New("lock expired or taken by another writer")

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	token := uuid.NewString()

	acquired, err := s.redisRepo.AcquireToken(ctx, key, token, ttl)
	if err != nil {
		s.Log.Error("lockService.TryLock error acquiring token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		s.Log.Info("lockService.TryLock slot already locked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, token),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl),
	)
	return true, token, nil
}

// Unlock fails with ErrRedisUnlock when the token no longer owns the key,
// which means the write outlived the lock's ttl.
func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	requestID := utils.GetRequestID(ctx)

	released, err := s.redisRepo.ReleaseToken(ctx, key, token)
	if err != nil {
		s.Log.Error("lockService.Unlock error releasing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	if !released {
		s.Log.Warn("lockService.Unlock lock was not held by this token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.String(constvars.LoggingLockValueKey, token),
		)
		return exceptions.ErrRedisUnlock(errLockLost)
	}

	s.Log.Debug("lockService.Unlock released",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}
