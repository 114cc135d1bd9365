// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"timeback/config"

	"github.com/go-redis/redis/v8"
)

// GuardCacheClient backs the shared in-flight submission guard.
var GuardCacheClient *redis.Client

// InitGuardCache initializes the Redis client used by the submission guard.
func InitGuardCache() {
	GuardCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisGuardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := GuardCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Guard): %v", err)
	}
}

// GetGuardCacheClient returns the guard client, connecting on first use.
func GetGuardCacheClient() *redis.Client {
	if GuardCacheClient == nil {
		InitGuardCache()
	}
	return GuardCacheClient
}
