// Package cache provides the customer read cache in front of the registry
// store. Entries are written on read, invalidated on every customer
// mutation, and expire on a TTL so stale verification data never outlives
// the retention window.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
)

const customerKeyPrefix = "kycnet:customer:"

// ErrNotFound signals a cache miss.
var ErrNotFound = store.ErrNotFound

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kycnet_customer_cache_hits_total",
		Help: "Number of customer lookups served from the cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kycnet_customer_cache_misses_total",
		Help: "Number of customer lookups that fell through to the store",
	})
)

// Redis persists cached customer records in Redis with TTL eviction.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed customer cache.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Find loads a cached customer by user name. Returns ErrNotFound on a miss.
func (c *Redis) Find(ctx context.Context, userName string) (*models.Customer, error) {
	data, err := c.client.Get(ctx, customerKey(userName)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheMisses.Inc()
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer cache: %w", err)
	}

	var customer models.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, fmt.Errorf("decode customer cache: %w", err)
	}
	cacheHits.Inc()
	return &customer, nil
}

// Save writes a customer record with TTL eviction, overwriting any entry.
func (c *Redis) Save(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("customer record is required")
	}
	payload, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("encode customer cache: %w", err)
	}
	if err := c.client.Set(ctx, customerKey(customer.UserName), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("save customer cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry for userName, if any.
func (c *Redis) Invalidate(ctx context.Context, userName string) error {
	if err := c.client.Del(ctx, customerKey(userName)).Err(); err != nil {
		return fmt.Errorf("invalidate customer cache: %w", err)
	}
	return nil
}

func customerKey(userName string) string {
	return customerKeyPrefix + userName
}
