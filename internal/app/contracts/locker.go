package contracts

import (
	"context"
	"time"
)

// LockerService serializes writers on one appointment slot. TryLock never
// waits: a held lock yields acquired == false and an empty token.
type LockerService interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
