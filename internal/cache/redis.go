package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryKey caches the financial summary report.
const SummaryKey = "report:summary"

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when
// Redis is unreachable every helper degrades to a miss.
func Init(addr, password string) error {
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Del(ctx, key)
}

// GetCachedSummary returns the cached summary report if available
func GetCachedSummary(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, SummaryKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheSummary caches the summary report for one minute
func CacheSummary(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, SummaryKey, data, time.Minute)
}

// InvalidateSummary clears the cached summary. Called after every
// transaction write, including derived ledger writes.
func InvalidateSummary(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, SummaryKey)
}
