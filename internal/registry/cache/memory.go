package cache

import (
	"context"
	"sync"
	"time"

	"kycnet/internal/registry/models"
)

type memoryEntry struct {
	customer *models.Customer
	expires  time.Time
}

// Memory is an in-process customer cache with TTL eviction, used in tests
// and in deployments without Redis.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory constructs an in-memory customer cache.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Find loads a cached customer by user name. Returns ErrNotFound on a miss
// or when the entry has expired.
func (c *Memory) Find(_ context.Context, userName string) (*models.Customer, error) {
	c.mu.RLock()
	entry, ok := c.entries[userName]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		cacheMisses.Inc()
		return nil, ErrNotFound
	}
	cacheHits.Inc()
	return entry.customer.Clone(), nil
}

// Save stores a copy of the customer record.
func (c *Memory) Save(_ context.Context, customer *models.Customer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[customer.UserName] = memoryEntry{
		customer: customer.Clone(),
		expires:  c.now().Add(c.ttl),
	}
	return nil
}

// Invalidate drops the cached entry for userName, if any.
func (c *Memory) Invalidate(_ context.Context, userName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userName)
	return nil
}
