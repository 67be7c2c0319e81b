package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HSN51/AI-News-Dashboard/pkg/news"
)

const redisKeyPrefix = "newsdash:fetch:"

// Redis caches results in a shared Redis instance so multiple API replicas
// observe the same fetch window. Any Redis or codec error degrades to a
// cache miss; caching never breaks a fetch.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(redisURL string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(key string) (news.Result, bool) {
	val, err := r.client.Get(context.Background(), redisKeyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("error reading result cache", "key", key, "error", err)
		}
		return news.Result{}, false
	}

	var result news.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		slog.Warn("error decoding cached result", "key", key, "error", err)
		return news.Result{}, false
	}

	return result, true
}

func (r *Redis) Set(key string, result news.Result) {
	b, err := json.Marshal(result)
	if err != nil {
		slog.Warn("error encoding result for cache", "key", key, "error", err)
		return
	}

	if err := r.client.Set(context.Background(), redisKeyPrefix+key, b, r.ttl).Err(); err != nil {
		slog.Warn("error writing result cache", "key", key, "error", err)
	}
}

func (r *Redis) Name() string {
	return "redis"
}

func (r *Redis) Close() error {
	return r.client.Close()
}
