package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	profileDomain "mattespel/internal/domain/profile"
	errs "mattespel/internal/errors"
)

// RedisProfileStorage keeps one JSON record per user at
// user:<id>:profile. Update wraps the read-modify-write in WATCH with a
// bounded retry: two overlapping updates of the same profile cannot
// silently clobber each other, the loser re-reads and reapplies.
type RedisProfileStorage struct {
	client  *redis.Client
	log     *zap.SugaredLogger
	retries int
}

func NewRedisProfileStorage(client *redis.Client, log *zap.SugaredLogger, retries int) *RedisProfileStorage {
	if retries < 1 {
		retries = 1
	}
	return &RedisProfileStorage{
		client:  client,
		log:     log,
		retries: retries,
	}
}

func profileKey(userID string) string {
	return "user:" + userID + ":profile"
}

func (r *RedisProfileStorage) Get(ctx context.Context, userID string) (profileDomain.Profile, bool, error) {
	data, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return profileDomain.Profile{}, false, nil
		}
		r.log.Error(err)
		return profileDomain.Profile{}, false, errs.ErrInternal
	}

	var p profileDomain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		r.log.Errorf("corrupt profile record for user %s: %v", userID, err)
		return profileDomain.Profile{}, false, errs.ErrInternal
	}
	return p, true, nil
}

func (r *RedisProfileStorage) Save(ctx context.Context, userID string, p profileDomain.Profile) error {
	data, err := json.Marshal(p.Normalize())
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, profileKey(userID), data, 0).Err(); err != nil {
		r.log.Error(err)
		return errs.ErrInternal
	}
	return nil
}

func (r *RedisProfileStorage) Update(ctx context.Context, userID string, mutate func(profileDomain.Profile) (profileDomain.Profile, error)) (profileDomain.Profile, error) {
	key := profileKey(userID)

	var updated profileDomain.Profile
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return errs.ErrProfileNotFound
		}
		if err != nil {
			return err
		}

		var p profileDomain.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			r.log.Errorf("corrupt profile record for user %s: %v", userID, err)
			return errs.ErrInternal
		}

		next, err := mutate(p.Normalize())
		if err != nil {
			return err
		}
		next = next.Normalize()

		out, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = next
		return nil
	}

	for attempt := 0; attempt < r.retries; attempt++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return profileDomain.Profile{}, err
	}
	return profileDomain.Profile{}, errs.ErrConflict
}
