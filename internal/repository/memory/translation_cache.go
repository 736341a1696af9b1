package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TranslationCache keeps raw provider output in process memory for the
// lifetime of the gateway that owns it.
type TranslationCache struct {
	cache   *cache.Cache
	maxSize int
}

// NewTranslationCache creates a cache whose entries expire after ttl
// (cache.NoExpiration keeps them forever). maxSize caps the entry count;
// zero or less means unbounded.
func NewTranslationCache(ttl time.Duration, maxSize int) *TranslationCache {
	cleanup := 10 * time.Minute
	if ttl == cache.NoExpiration {
		cleanup = 0
	}
	return &TranslationCache{
		cache:   cache.New(ttl, cleanup),
		maxSize: maxSize,
	}
}

func (c *TranslationCache) Set(key, value string) {
	if c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		if _, found := c.cache.Get(key); !found {
			c.cache.DeleteExpired()
			if c.cache.ItemCount() >= c.maxSize {
				return
			}
		}
	}
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *TranslationCache) Get(key string) (string, bool) {
	if x, found := c.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (c *TranslationCache) Len() int {
	return c.cache.ItemCount()
}
