package cache

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Client is the process-wide Redis client. The feed service uses it
// for seen-headline dedup keys; nothing else writes to it.
var Client *redis.Client

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// InitRedis connects using REDIS_URL, which may be a bare host:port or
// a redis:// / rediss:// URL. A failed ping is fatal since dedup state
// cannot survive restarts without it.
func InitRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	opts, err := redisOptions(addr)
	if err != nil {
		log.Fatalf("parse REDIS_URL: %v", err)
	}

	Client = newRedisClient(opts)
	if err := pingRedis(ctx, Client); err != nil {
		log.Fatalf("redis ping failed for %s: %v", opts.Addr, err)
	}
	log.Printf("Connected to Redis at %s", opts.Addr)
}

func redisOptions(addr string) (*redis.Options, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		return parseRedisURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}
