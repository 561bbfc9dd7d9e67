package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio-service/models"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps sessions in Redis as JSON blobs with a TTL, for
// running more than one instance behind a load balancer. State remains
// ephemeral: the TTL is the session lifetime.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisSessionStore) getKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, s.getKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.getKey(session.ID), data, s.ttl).Err()
}

// updateRetries bounds the optimistic retry loop when concurrent writers
// keep invalidating the watched key.
const updateRetries = 5

// Update runs fn inside a WATCH on the session key. A concurrent write
// between the read and the EXEC fails the transaction and the cycle retries,
// so no mutation is ever built on a stale read.
func (s *RedisSessionStore) Update(ctx context.Context, sessionID string, fn UpdateFunc) error {
	key := s.getKey(sessionID)

	txf := func(tx *redis.Tx) error {
		var session *models.Session
		data, err := tx.Get(ctx, key).Result()
		switch {
		case err == redis.Nil:
		case err != nil:
			return err
		default:
			session = &models.Session{}
			if err := json.Unmarshal([]byte(data), session); err != nil {
				return err
			}
		}

		updated, err := fn(session)
		if err != nil || updated == nil {
			return err
		}
		updated.UpdatedAt = time.Now()
		payload, err := json.Marshal(updated)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return fmt.Errorf("session %s: update retries exhausted", sessionID)
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.getKey(sessionID)).Err()
}
