package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/site-generator/internal/types"
)

// keyPrefix namespaces site keys
const keyPrefix = "sitegen:site:"

// RedisOptions configures the Redis store
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// TTL expires stored sites; zero keeps them forever
	TTL time.Duration
}

// Redis stores encoded sites as plain string values
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, ttl: opts.TTL}, nil
}

func siteKey(projectID string) string {
	return keyPrefix + projectID
}

// Save stores site under projectID with the configured TTL
func (r *Redis) Save(ctx context.Context, projectID string, site *types.GeneratedSite) (err error) {
	defer func() { observe("redis", "save", err) }()

	if err := checkProjectID(projectID); err != nil {
		return err
	}
	data, err := encodeSite(site)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, siteKey(projectID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save site %s: %w", projectID, err)
	}
	return nil
}

// Load returns the site stored under projectID
func (r *Redis) Load(ctx context.Context, projectID string) (site *types.GeneratedSite, err error) {
	defer func() { observe("redis", "load", err) }()

	data, err := r.client.Get(ctx, siteKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site %s: %w", projectID, err)
	}
	return decodeSite(data)
}

// Delete removes the site stored under projectID
func (r *Redis) Delete(ctx context.Context, projectID string) (err error) {
	defer func() { observe("redis", "delete", err) }()

	n, err := r.client.Del(ctx, siteKey(projectID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete site %s: %w", projectID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}
