package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rentalbilling:idempotency:"

// RedisStore shares records between API instances.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func redisKey(key string) string {
	return redisKeyPrefix + sha256Hex([]byte(key))
}

func (s *RedisStore) Reserve(ctx context.Context, key, fingerprint string, now time.Time, ttl time.Duration) (Reservation, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	pending := Record{Fingerprint: fingerprint, Status: StatusPending, CreatedAt: now}
	data, err := json.Marshal(pending)
	if err != nil {
		return Reservation{}, fmt.Errorf("idempotency: encode record: %w", err)
	}

	// A record may expire between SetNX and Get, so retry once.
	for attempt := 0; attempt < 2; attempt++ {
		reserved, err := s.client.SetNX(ctx, redisKey(key), data, ttl).Result()
		if err != nil {
			return Reservation{}, fmt.Errorf("idempotency: reserve key: %w", err)
		}
		if reserved {
			return Reservation{State: ReservationStateNew, Record: pending}, nil
		}

		raw, err := s.client.Get(ctx, redisKey(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return Reservation{}, fmt.Errorf("idempotency: load key: %w", err)
		}
		var existing Record
		if err := json.Unmarshal(raw, &existing); err != nil {
			return Reservation{}, fmt.Errorf("idempotency: decode record: %w", err)
		}
		return reservationFor(existing, fingerprint)
	}
	return Reservation{}, fmt.Errorf("idempotency: key %q keeps expiring", key)
}

func (s *RedisStore) SaveResponse(ctx context.Context, key, fingerprint string, resp Response, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	data, err := json.Marshal(completedRecord(fingerprint, resp, s.now()))
	if err != nil {
		return fmt.Errorf("idempotency: encode record: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency: save response: %w", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("idempotency: release key: %w", err)
	}
	return nil
}
