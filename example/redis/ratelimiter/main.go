package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"weather-pulse/pkg/redis"
)

func main() {
	redisHost := getEnvOrDefault("REDIS_HOST", "localhost")
	redisPort := getEnvOrDefaultInt("REDIS_PORT", 6379)

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(redisHost).
		WithPort(redisPort).
		WithPassword(os.Getenv("REDIS_PASSWORD")).
		WithNamespace("weather-pulse-example"))
	if err != nil {
		fmt.Printf("Error connecting to Redis: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	limiter := redis.NewRateLimiter(client, redis.RateLimiterOptions{
		Name:   "insight-demo",
		Limit:  3,
		Window: 10 * time.Second,
	})

	fmt.Printf("Allowing %d insight calls per 10s window\n", limiter.Limit())
	for i := 1; i <= 5; i++ {
		err := limiter.Acquire(ctx)
		switch {
		case err == nil:
			fmt.Printf("call %d: allowed\n", i)
		case errors.Is(err, redis.ErrRateLimitExceeded):
			fmt.Printf("call %d: limited\n", i)
		default:
			fmt.Printf("call %d: error %v\n", i, err)
		}
	}

	used, err := limiter.Used(ctx)
	if err == nil {
		fmt.Printf("Used in current window: %d\n", used)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
