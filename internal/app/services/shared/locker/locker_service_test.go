package locker

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	return true, f.Set(context.Background(), key, value, exp)
}

func TestLockerService(t *testing.T) {
	t.Run("lock then unlock", func(t *testing.T) {
		service := NewLockerService(&fakeRedisRepository{data: make(map[string]string)})

		acquired, lockValue, err := service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, lockValue)

		err = service.Unlock(context.Background(), "lock:test", lockValue)
		assert.NoError(t, err)

		acquired, _, err = service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired, "released lock can be taken again")
	})

	t.Run("second locker does not acquire", func(t *testing.T) {
		service := NewLockerService(&fakeRedisRepository{data: make(map[string]string)})

		acquired, _, err := service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, _, err = service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("unlock with a foreign value is refused", func(t *testing.T) {
		service := NewLockerService(&fakeRedisRepository{data: make(map[string]string)})

		acquired, _, err := service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		err = service.Unlock(context.Background(), "lock:test", "not-the-holder")
		assert.Error(t, err)

		acquired, _, err = service.TryLock(context.Background(), "lock:test", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired, "lock must survive a foreign unlock attempt")
	})
}
