package lru

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

var ErrIllegalCapacity = errors.New("illegal lru cache capacity")
var ErrInvalidSharding = errors.New("invalid sharding")

type OnEvict func(k, v string)

// Cache is a string keyed LRU split into shards picked by the xxhash of the key.
// Every shard gets an equal share of maxTotalBytes.
type Cache struct {
	maxBytes uint64
	capacity uint64
	shards   []*lruShard
}

func NewCache(shards int, maxTotalBytes uint64, onEvict OnEvict) (*Cache, error) {
	if maxTotalBytes <= 2 {
		return nil, ErrIllegalCapacity
	}

	if shards < 2 {
		return nil, ErrInvalidSharding
	}

	c := Cache{
		maxBytes: maxTotalBytes,
		capacity: uint64(shards),
		shards:   make([]*lruShard, shards),
	}

	shardMaxBytes := maxTotalBytes / c.capacity
	for i := range c.shards {
		c.shards[i] = newLruShard(shardMaxBytes, onEvict)
	}

	return &c, nil
}

// Add value to cache under key and returns true if eviction happened
func (c *Cache) Add(key, value string) bool {
	return c.getShard(key).add(key, value)
}

func (c *Cache) Get(key string) (string, bool) {
	return c.getShard(key).get(key)
}

func (c *Cache) Remove(key string) {
	c.getShard(key).remove(key)
}

func (c *Cache) Purge() {
	var wg sync.WaitGroup

	wg.Add(len(c.shards))
	for i := range c.shards {
		go func(i int) {
			defer wg.Done()
			c.shards[i].purge()
		}(i)
	}

	wg.Wait()
}

func (c *Cache) Count() int {
	var count int
	for i := range c.shards {
		count += c.shards[i].len()
	}

	return count
}

func (c *Cache) Keys() []string {
	keys := make([]string, 0, c.Count())

	for i := range c.shards {
		keys = append(keys, c.shards[i].keys()...)
	}

	return keys
}

func (c *Cache) getShard(key string) *lruShard {
	hash := xxhash.Sum64String(key)
	return c.shards[hash%c.capacity]
}
