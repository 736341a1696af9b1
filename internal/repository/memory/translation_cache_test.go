package memory

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestTranslationCache_SetGet(t *testing.T) {
	c := NewTranslationCache(cache.NoExpiration, 0)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestTranslationCache_MaxSize(t *testing.T) {
	c := NewTranslationCache(cache.NoExpiration, 2)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Set("a", "updated")

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("c")
	assert.False(t, ok)
	v, _ := c.Get("a")
	assert.Equal(t, "updated", v)
}

func TestTranslationCache_Expiry(t *testing.T) {
	c := NewTranslationCache(20*time.Millisecond, 0)
	c.Set("k", "v")

	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}
