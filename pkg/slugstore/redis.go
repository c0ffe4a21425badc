package slugstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client for cfg and waits until the server answers PING,
// retrying RetryAttempts times.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	var lastErr error
	for range max(cfg.RetryAttempts, 1) {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrNotReady, lastErr)
}

// RedisSetClient is the part of redis.Cmdable a RedisSet needs.
type RedisSetClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
}

// RedisSet keeps taken slugs as members of one Redis set.
type RedisSet struct {
	client RedisSetClient
	key    string
}

// NewRedisSet returns a RedisSet stored under key. Any redis.Cmdable
// (client, cluster client, pipeline) can be passed.
func NewRedisSet(client RedisSetClient, key string) (*RedisSet, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &RedisSet{client: client, key: key}, nil
}

// Exists reports whether slug is a member of the set. It satisfies slug.ExistsFunc.
func (r *RedisSet) Exists(ctx context.Context, slug string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, slug).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return ok, nil
}

// Claim adds slug to the set and reports it taken when it was already there.
// Used as a slug.ExistsFunc it reserves the slug it returns.
func (r *RedisSet) Claim(ctx context.Context, slug string) (bool, error) {
	added, err := r.client.SAdd(ctx, r.key, slug).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return added == 0, nil
}

// Release removes slug from the set.
func (r *RedisSet) Release(ctx context.Context, slug string) error {
	if err := r.client.SRem(ctx, r.key, slug).Err(); err != nil {
		return errors.Join(ErrLookupFailed, err)
	}
	return nil
}
