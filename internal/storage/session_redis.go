package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

// RedisSessionStore keeps each session as one JSON value under
// "session:<id>" with a sliding TTL. Logout deletes the key.
type RedisSessionStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger internal.Logger
}

func NewRedisSessionStore(ctx context.Context, addr string, ttl time.Duration, logger internal.Logger) (*RedisSessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		logger.Errorf("failed to connect to redis at %s: %v", addr, err)
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisSessionStoreFromClient(rdb, ttl, logger), nil
}

func NewRedisSessionStoreFromClient(rdb *redis.Client, ttl time.Duration, logger internal.Logger) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl, logger: logger}
}

const maxUpdateRetries = 50

// ErrUpdateConflict is returned when a session kept changing underneath Update.
var ErrUpdateConflict = errors.New("storage: session update conflict")

func sessionKey(id string) string {
	return "session:" + id
}

func (r *RedisSessionStore) Create(ctx context.Context, s *internal.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, sessionKey(s.ID), raw, r.ttl).Err(); err != nil {
		r.logger.Errorf("failed to store session: %v", err)
		return err
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*internal.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Errorf("failed to load session: %v", err)
		return nil, err
	}
	var s internal.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("storage: decode session: %w", err)
	}
	return &s, nil
}

// Update runs fn inside WATCH/MULTI on the session key and retries when
// another writer touched the key first.
func (r *RedisSessionStore) Update(ctx context.Context, id string, fn UpdateFunc) error {
	key := sessionKey(id)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		var s internal.Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("storage: decode session: %w", err)
		}
		if err := fn(&s); err != nil {
			return err
		}
		s.ID = id
		out, err := json.Marshal(&s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			r.logger.Errorf("failed to update session: %v", err)
		}
		return err
	}
	r.logger.Warnf("session %s update gave up after %d conflicts", id, maxUpdateRetries)
	return ErrUpdateConflict
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		r.logger.Errorf("failed to delete session: %v", err)
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisSessionStore) Close() error {
	return r.rdb.Close()
}

var _ SessionStore = (*RedisSessionStore)(nil)
