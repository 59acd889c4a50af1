package flash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vet-clinic-admin/internal/ui/dialog"
)

const keyPrefix = "vetadmin:flash:"

// RedisClient es el subconjunto de go-redis que usa RedisStore.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Close() error
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStore comparte los mensajes entre varias instancias del admin.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

// NewRedisStore conecta y verifica con PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("flash: redis ping %s: %w", cfg.Addr, err)
	}
	return NewRedisStoreWithClient(client, cfg.TTL), nil
}

func NewRedisStoreWithClient(client RedisClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, d dialog.Dialog) (string, error) {
	b, err := encode(d)
	if err != nil {
		return "", err
	}
	key := newKey()
	if err := s.client.Set(ctx, keyPrefix+key, b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("flash: redis set: %w", err)
	}
	return key, nil
}

// Pop usa GETDEL: dos lecturas concurrentes no pueden ver el mismo mensaje.
func (s *RedisStore) Pop(ctx context.Context, key string) (dialog.Dialog, bool, error) {
	if key == "" {
		return dialog.Closed(), false, ErrEmptyKey
	}
	b, err := s.client.GetDel(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return dialog.Closed(), false, nil
	}
	if err != nil {
		return dialog.Closed(), false, fmt.Errorf("flash: redis getdel: %w", err)
	}
	d, err := decode(b)
	if err != nil {
		return dialog.Closed(), false, err
	}
	return d, true, nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
