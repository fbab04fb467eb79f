package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type RedisSessionStorage struct {
	client *redis.Client
	log    *zap.SugaredLogger
	ttl    time.Duration
}

func NewSessionRedisStorage(client *redis.Client, log *zap.SugaredLogger, ttl time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (r *RedisSessionStorage) GetUserIDBySession(ctx context.Context, token string) (string, bool) {
	v, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Error(err)
		}
		return "", false
	}
	return v, true
}

func (r *RedisSessionStorage) StoreSession(ctx context.Context, token, userID string) {
	if err := r.client.Set(ctx, sessionKeyPrefix+token, userID, r.ttl).Err(); err != nil {
		r.log.Error(err)
	}
}

func (r *RedisSessionStorage) DeleteSession(ctx context.Context, token string) bool {
	if err := r.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		r.log.Error(err)
		return false
	}
	return true
}
