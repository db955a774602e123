package handler

import (
	"event_manager/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedis must run after config.LoadEnv. Redis backs the analytics
// cache and the check-in feed; the app works without it, degraded.
func InitRedis() {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})
}
