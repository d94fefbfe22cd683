package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// KeyPrefix namespaces the session entries in the store.
const KeyPrefix = "user_token:"

type (
	// A Store persists session records keyed by token, with per-entry
	// expiry. It is the authority on token validity: a token absent from
	// the store is invalid, whatever its claims say.
	Store interface {
		// Set binds a record to the given token for ttl.
		Set(ctx context.Context, token string, record Record, ttl time.Duration) error
		// Get returns the record bound to the given token, or nil when
		// the token is unknown or expired.
		Get(ctx context.Context, token string) (*Record, error)
		// Del removes the record bound to the given token. It returns
		// false when there was no entry to remove.
		Del(ctx context.Context, token string) (bool, error)
		// Close the store connection.
		Close() error
	}

	redisStore struct {
		client *redis.Client
	}
)

// NewRedisStore returns a Store backed by the Redis reachable at url.
// The client is shared and reused across requests, the connection is
// verified once here.
func NewRedisStore(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "could not connect to redis")
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Set(ctx context.Context, token string, record Record, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "could not serialize session record")
	}

	err = s.client.Set(ctx, KeyPrefix+token, payload, ttl).Err()
	return errors.Wrap(err, "could not store session record")
}

func (s *redisStore) Get(ctx context.Context, token string) (*Record, error) {
	payload, err := s.client.Get(ctx, KeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch session record")
	}

	var record Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, errors.Wrap(err, "could not deserialize session record")
	}
	return &record, nil
}

func (s *redisStore) Del(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Del(ctx, KeyPrefix+token).Result()
	if err != nil {
		return false, errors.Wrap(err, "could not delete session record")
	}
	return n > 0, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
