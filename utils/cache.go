// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"menucatalog/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client used for the menu document cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using the cache DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client, connecting on first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CacheTTL is the configured lifetime of cached menu documents.
func CacheTTL() time.Duration {
	if config.AppConfig.CacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
}
