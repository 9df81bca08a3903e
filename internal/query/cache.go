package query

import "sync"

// Cache keys, one per entity list the dashboard shows. They mirror the
// fetch paths so invalidation reads naturally next to the mutation.
const (
	KeyMyRestaurants    = "my-restaurants"
	KeyMyMenu           = "my-menu"
	KeyMyCategories     = "my-categories"
	KeyMyOrders         = "my-orders"
	KeyMyReviews        = "my-reviews"
	KeyMyTransactions   = "my-transactions"
	KeyTransactionStats = "transaction-stats"
)

// Cache memoizes list responses per process. A successful mutation
// invalidates the matching key so the next read refetches; racing mutations
// just invalidate twice, which is harmless (last invalidation wins).
type Cache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

func (c *Cache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) set(key string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}
