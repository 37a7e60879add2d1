// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
)

const (
	redisBackend      = "redis"
	redisScanCount    = 100
	defaultSessionTTL = 24 * time.Hour
)

// RedisStore is the per-session backend of "sessionStorage". Every key is
// stored as <prefix><session id>:<key> and expires TTL after its last write,
// so a session's data disappears with the session.
type RedisStore struct {
	client    *redis.Client
	sessionID string
	keyPrefix string
	ttl       time.Duration
	timeout   time.Duration
	logger    *logger.Logger
}

// NewRedisStore connects to Redis and returns the store of one session.
func NewRedisStore(ctx context.Context, cfg config.SessionStorage, sessionID string, log *logger.Logger) (*RedisStore, error) {
	if cfg.RedisAddr == "" {
		return nil, ErrSessionStorageDisabled
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", newBackendError(redisBackend, "connect", err))
	}

	log.Info().
		Str("addr", cfg.RedisAddr).
		Int("db", cfg.RedisDB).
		Msg("connected to Redis session storage")

	return NewRedisStoreFromClient(client, cfg, sessionID, log), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, cfg config.SessionStorage, sessionID string, log *logger.Logger) *RedisStore {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	timeout := cfg.OpTimeout
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}

	return &RedisStore{
		client:    client,
		sessionID: sessionID,
		keyPrefix: cfg.KeyPrefix + sessionID + ":",
		ttl:       ttl,
		timeout:   timeout,
		logger:    log,
	}
}

// SessionID returns the id of the session the store is bound to.
func (s *RedisStore) SessionID() string {
	return s.sessionID
}

func (s *RedisStore) key(key string) string {
	return s.keyPrefix + key
}

func (s *RedisStore) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.fail(opGetItem, err)
	}

	return val, true, nil
}

func (s *RedisStore) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return s.fail(opSetItem, err)
	}

	return nil
}

func (s *RedisStore) RemoveItem(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return s.fail(opRemoveItem, err)
	}

	return nil
}

// Clear deletes every key of the session. Keys of other sessions sharing the
// prefix are left untouched.
func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", redisScanCount).Result()
		if err != nil {
			return s.fail(opClear, err)
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return s.fail(opClear, err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) fail(op string, err error) error {
	bErr := newBackendError(redisBackend, op, err)
	s.logger.Warn().
		Err(err).
		Str("func", "*RedisStore."+op).
		Str("errno", bErr.Code).
		Msg("redis storage operation failed")
	return bErr
}
