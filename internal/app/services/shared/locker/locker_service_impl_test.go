package locker

import (
	"context"
	"errors"
	"interview-scheduler/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) AcquireToken(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, token, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) ReleaseToken(ctx context.Context, key, token string) (bool, error) {
	args := m.Called(ctx, key, token)
	return args.Bool(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "schedule:appointment:1:lock"

	t.Run("TryLock Acquired", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("AcquireToken", ctx, key, mock.AnythingOfType("string"), 5*time.Second).Return(true, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, key, 5*time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("TryLock Tokens Differ Per Call", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("AcquireToken", ctx, key, mock.Anything, mock.Anything).Return(true, nil)
		service := NewLockService(repo, zap.NewNop())

		_, first, _ := service.TryLock(ctx, key, time.Second)
		_, second, _ := service.TryLock(ctx, key, time.Second)

		assert.NotEqual(t, first, second)
	})

	t.Run("TryLock Held Elsewhere", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("AcquireToken", ctx, key, mock.Anything, mock.Anything).Return(false, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, key, time.Second)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("TryLock Redis Failure", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("AcquireToken", ctx, key, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

		acquired, _, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, key, time.Second)

		assert.Error(t, err)
		assert.False(t, acquired)
	})

	t.Run("Unlock Owned", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("ReleaseToken", ctx, key, "owner-token").Return(true, nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, key, "owner-token")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Unlock Lost", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("ReleaseToken", ctx, key, "owner-token").Return(false, nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, key, "owner-token")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.ErrorIs(t, err, errLockLost)
	})

	t.Run("Unlock Redis Failure", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("ReleaseToken", ctx, key, "owner-token").Return(false, errors.New("connection refused"))

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, key, "owner-token")

		assert.EqualError(t, err, "connection refused")
	})
}
