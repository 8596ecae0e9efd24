package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sitelog/config"
	"sitelog/models"
)

const (
	sessionKeyPrefix = "sitelog:session:"
	teamsCacheKey    = "sitelog:teams"
)

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared between instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: ttl,
	}
}

// Ping verifies the Redis connection at boot.
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PutTeams stores the teams cache without a TTL: a stale list is still
// better than an empty selector when the backend is down.
func (r *RedisStore) PutTeams(teams []models.Team) {
	data, err := json.Marshal(teams)
	if err != nil {
		return
	}
	r.client.Set(context.Background(), teamsCacheKey, data, 0)
}

func (r *RedisStore) CachedTeams() ([]models.Team, bool) {
	data, err := r.client.Get(context.Background(), teamsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var teams []models.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, false
	}
	return teams, true
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
