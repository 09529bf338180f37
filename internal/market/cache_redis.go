// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

package market

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockseer/api/internal/platform/constants"
)

// # Read-Through Cache

// CachedProvider decorates a [Provider] with a Redis read-through cache.
//
// # Failure Policy
//
// The cache is an accelerator, never a gatekeeper: a Redis read or write
// failure is logged and the call falls through to the upstream provider.
// Only upstream failures surface to the caller.
type CachedProvider struct {
	upstream Provider
	client   *redis.Client
	logger   *slog.Logger
}

// NewCachedProvider wraps upstream with the Redis cache layer.
func NewCachedProvider(upstream Provider, client *redis.Client, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{
		upstream: upstream,
		client:   client,
		logger:   logger,
	}
}

// FetchProfile serves the company profile through the cache (24h TTL).
func (cache *CachedProvider) FetchProfile(context context.Context, ticker string) (*Profile, error) {
	return readThrough(context, cache, constants.RedisPrefixProfile+ticker, constants.ProfileCacheTTL,
		func() (*Profile, error) { return cache.upstream.FetchProfile(context, ticker) })
}

// FetchQuote serves the price snapshot through the cache (60s TTL).
func (cache *CachedProvider) FetchQuote(context context.Context, ticker string) (*Quote, error) {
	return readThrough(context, cache, constants.RedisPrefixQuote+ticker, constants.QuoteCacheTTL,
		func() (*Quote, error) { return cache.upstream.FetchQuote(context, ticker) })
}

// FetchStatistics serves the fundamentals through the cache (15m TTL).
func (cache *CachedProvider) FetchStatistics(context context.Context, ticker string) (*KeyStatistics, error) {
	return readThrough(context, cache, constants.RedisPrefixStatistics+ticker, constants.StatisticsCacheTTL,
		func() (*KeyStatistics, error) { return cache.upstream.FetchStatistics(context, ticker) })
}

// FetchAnalystCoverage is served uncached: it's a low-traffic, pro-tier
// surface, and ratings pages are fetched too rarely to warm usefully.
func (cache *CachedProvider) FetchAnalystCoverage(context context.Context, ticker string) (*AnalystCoverage, error) {
	return cache.upstream.FetchAnalystCoverage(context, ticker)
}

// FetchNews serves headlines through the cache (5m TTL).
func (cache *CachedProvider) FetchNews(context context.Context, ticker string) ([]NewsArticle, error) {
	articles, err := readThrough(context, cache, constants.RedisPrefixNews+ticker, constants.NewsCacheTTL,
		func() (*[]NewsArticle, error) {
			fetched, err := cache.upstream.FetchNews(context, ticker)
			if err != nil {
				return nil, err
			}
			return &fetched, nil
		})
	if err != nil {
		return nil, err
	}
	return *articles, nil
}

/*
readThrough implements the generic cache-aside flow.

Description: GET the key; on hit, unmarshal and return. On miss (redis.Nil)
or cache failure, call fetch, then SET the marshaled result with the given
TTL. Cache write failures are logged, never returned.

Parameters:
  - context: context.Context
  - cache: *CachedProvider (client and logger)
  - key: string (fully prefixed Redis key)
  - ttl: time.Duration
  - fetch: func() (*T, error) (upstream call)

Returns:
  - *T: Cached or freshly fetched value
  - error: Upstream failures only
*/
func readThrough[T any](context context.Context, cache *CachedProvider, key string, ttl time.Duration, fetch func() (*T, error)) (*T, error) {
	cached, err := cache.client.Get(context, key).Bytes()
	if err == nil {
		value := new(T)
		if err := json.Unmarshal(cached, value); err == nil {
			return value, nil
		}
		// Corrupt entry; fall through and overwrite it.
		cache.logger.Warn("market cache entry corrupt", slog.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		cache.logger.Warn("market cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	value, err := fetch()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(value); err == nil {
		if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
			cache.logger.Warn("market cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return value, nil
}
