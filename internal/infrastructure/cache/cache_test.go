package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache_GetSet(t *testing.T) {
	cache := NewInMemoryCache()
	key := "publishing_house:test"
	value := "testValue"

	cache.Set(key, value, time.Minute)

	result, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, value, result)
}

func TestInMemoryCache_Miss(t *testing.T) {
	cache := NewInMemoryCache()

	result, found := cache.Get("missing")
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestInMemoryCache_Expiration(t *testing.T) {
	cache := NewInMemoryCache()
	key := "publishing_house:test"

	cache.Set(key, "testValue", time.Millisecond)

	time.Sleep(2 * time.Millisecond)

	result, found := cache.Get(key)
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestInMemoryCache_Delete(t *testing.T) {
	cache := NewInMemoryCache()
	key := "publishing_house:test"

	cache.Set(key, "testValue", time.Minute)

	result, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, "testValue", result)

	cache.Delete(key)

	result, found = cache.Get(key)
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestInMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewInMemoryCache()
	key := "publishing_house:test"
	value := "testValue"

	for i := 0; i < 10; i++ {
		go func() {
			cache.Set(key, value, time.Minute)
			cache.Get(key)
			cache.Delete(key)
		}()
	}

	time.Sleep(100 * time.Millisecond)
}
