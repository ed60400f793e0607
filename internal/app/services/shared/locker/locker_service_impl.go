package locker

import (
	"context"
	"fmt"
	"time"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type lockerService struct {
	redisRepository contracts.RedisRepository
}

func NewLockerService(redisRepository contracts.RedisRepository) contracts.LockerService {
	return &lockerService{redisRepository: redisRepository}
}

// TryLock attempts to acquire a short-lived lock on the key. The returned
// lock value must be presented to Unlock so only the holder can release it.
func (s *lockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepository.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		return false, "", err
	}
	if !acquired {
		return false, "", nil
	}
	return true, lockValue, nil
}

func (s *lockerService) Unlock(ctx context.Context, key, lockValue string) error {
	storedValue, err := s.redisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	// Values go through the JSON marshaller on the way in, so the stored
	// form carries quotes.
	if storedValue != fmt.Sprintf("%q", lockValue) {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock on %s is not held by this caller", key))
	}
	return s.redisRepository.Delete(ctx, key)
}
