package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetTyped(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("names", []string{"a", "b"}, time.Minute)

	got, ok := GetTyped[[]string](c, "names")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = GetTyped[int](c, "names")
	assert.False(t, ok, "type mismatch reads as a miss")

	_, ok = GetTyped[[]string](c, "absent")
	assert.False(t, ok)
}

func TestCache_Expiration(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("k", 1, 10*time.Millisecond)

	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}
