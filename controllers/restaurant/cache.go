package restaurantControllers

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Evan-Joseph/hospital-delivery-system/models"
)

const (
	listingCacheKey = "restaurants:approved"
	listingCacheTTL = 60 * time.Second
)

var cacheClient *redis.Client

// InitCache connects the listing cache. Caching is optional: with no
// REDIS_ADDR every lookup falls through to the database.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, restaurant listing cache disabled")
		return
	}
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("✅ Restaurant listing cache enabled at %s", addr)
}

func cachedListing(ctx context.Context) ([]byte, bool) {
	if cacheClient == nil {
		return nil, false
	}
	data, err := cacheClient.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func storeListing(ctx context.Context, restaurants []models.Restaurant) {
	if cacheClient == nil {
		return
	}
	data, err := json.Marshal(restaurants)
	if err != nil {
		return
	}
	if err := cacheClient.Set(ctx, listingCacheKey, data, listingCacheTTL).Err(); err != nil {
		log.Printf("⚠️ Failed to cache restaurant listing: %v", err)
	}
}

// InvalidateListingCache drops the cached listing after an approval-status
// change so customers never see a stale restaurant set for the full TTL.
func InvalidateListingCache(ctx context.Context) {
	if cacheClient == nil {
		return
	}
	if err := cacheClient.Del(ctx, listingCacheKey).Err(); err != nil {
		log.Printf("⚠️ Failed to invalidate restaurant listing cache: %v", err)
	}
}
