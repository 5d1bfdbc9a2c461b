package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis opens the connection used for all per-session collections and
// the rate limiter. Redis is the only durable store in the system.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Fatalf("❌ failed to connect to Redis: %v", err)
	}
	fmt.Println("✅ Connected to Redis:", res)
}
