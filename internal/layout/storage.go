package layout

import (
	"context"
	"sync"

	"github.com/HasanBocek/KTUTennisCRM/pkg/redis"
)

// RedisStorage keeps layout documents in Redis, one JSON blob per
// user. Documents have no TTL; they live until the user resets them.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Load(ctx context.Context, userID string) (Layout, bool, error) {
	raw, err := s.client.Get(ctx, s.client.LayoutKey(userID))
	if err != nil {
		if redis.IsNotFound(err) {
			return Layout{}, false, nil
		}
		return Layout{}, false, err
	}
	decoded, err := Decode([]byte(raw))
	if err != nil {
		return Layout{}, false, err
	}
	return decoded, true, nil
}

func (s *RedisStorage) Save(ctx context.Context, userID string, l Layout) error {
	encoded, err := Encode(l)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.client.LayoutKey(userID), encoded, 0)
}

// MemoryStorage is the fallback backend used when Redis is not
// configured. Settings survive for the process lifetime only.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]Layout
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]Layout)}
}

func (s *MemoryStorage) Load(_ context.Context, userID string) (Layout, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.data[userID]
	return l, ok, nil
}

func (s *MemoryStorage) Save(_ context.Context, userID string, l Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = l
	return nil
}
