package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SiddiqueAhmad/ai-costing/internal/data/source"
	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// DefaultTTL bounds how often the external feed is fetched.
const DefaultTTL = 60 * time.Second

// FeedCache holds the most recently fetched raw feed with a fixed
// time-to-live. It is an explicit object owned by the caller, invalidated
// either by expiry or by Invalidate; there is no process-wide state.
type FeedCache struct {
	src source.Source
	ttl time.Duration

	mu        sync.Mutex
	payload   []byte
	fetchedAt time.Time
}

// New creates a cache in front of the given source. A non-positive ttl falls
// back to DefaultTTL.
func New(src source.Source, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FeedCache{
		src: src,
		ttl: ttl,
	}
}

// Get returns the cached payload when still fresh, otherwise fetches. A fetch
// failure is returned as-is: stale data is never served in place of an error,
// so the caller can distinguish "feed down" from "no data yet".
func (c *FeedCache) Get(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payload != nil && time.Since(c.fetchedAt) < c.ttl {
		util.LogDebug(fmt.Sprintf("Feed cache hit for %s (age %v)", c.src.Name(), time.Since(c.fetchedAt).Round(time.Millisecond)))
		return c.payload, nil
	}

	payload, err := c.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.payload = payload
	c.fetchedAt = time.Now()
	return payload, nil
}

// Invalidate drops the cached payload so the next Get refetches.
func (c *FeedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
	c.fetchedAt = time.Time{}
	util.LogDebug(fmt.Sprintf("Feed cache invalidated for %s", c.src.Name()))
}

// Age returns how old the cached payload is, and false when nothing is cached.
func (c *FeedCache) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return 0, false
	}
	return time.Since(c.fetchedAt), true
}
