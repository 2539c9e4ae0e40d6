// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"safarihub/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for short-lived lookups
// such as the staff availability-search results.
var CacheClient *redis.Client

// AvailabilityCachePrefix is the prefix used for cached staff-availability searches.
const AvailabilityCachePrefix = "staffAvail:"

// AvailabilityCacheTTL bounds how stale a cached availability search may be.
const AvailabilityCacheTTL = 2 * time.Minute

// InitRedis initializes the generic Redis cache client.
func InitRedis() {
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

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
