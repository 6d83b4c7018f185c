// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kasaneapp/kasane/internal/platform/constants"
)

// # Document Cache

// Cache stores rendered sitemap documents keyed by realm and document name.
// A miss is reported as (nil, nil); cache faults are returned so callers
// can fall back to a fresh render.
type Cache struct {
	client *redis.Client
}

// NewCache constructs a redis-backed document cache.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// cacheKey builds the taxonomy key for one rendered document.
func cacheKey(isAdult bool, name string) string {
	realmKey := "public"
	if isAdult {
		realmKey = "adult"
	}
	return fmt.Sprintf("%s%s:%s", constants.RedisPrefixSitemapCache, realmKey, name)
}

// Get returns a cached document, or nil on a miss.
func (cache *Cache) Get(context context.Context, isAdult bool, name string) ([]byte, error) {
	body, err := cache.client.Get(context, cacheKey(isAdult, name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis: failed to read sitemap cache: %w", err)
	}

	return body, nil
}

// Set stores a rendered document under the standard TTL.
func (cache *Cache) Set(context context.Context, isAdult bool, name string, body []byte) error {
	err := cache.client.Set(context, cacheKey(isAdult, name), body, constants.SitemapCacheTTL).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to write sitemap cache: %w", err)
	}

	return nil
}
