package cache

import (
	"testing"

	ai "github.com/spetersoncode/alchemy"
	"github.com/stretchr/testify/assert"
)

func entry(query string) ai.CacheEntry {
	return ai.CacheEntry{
		Query:  query,
		Intent: ai.IntentBlog,
		Output: &ai.FinalOutput{Query: query, Success: true},
	}
}

func TestPushEvictsOldestAtCapacity(t *testing.T) {
	c := New(3)
	c.Push(entry("first"))
	c.Push(entry("second"))
	c.Push(entry("third"))
	c.Push(entry("fourth"))

	assert.Equal(t, 3, c.Len())
	entries := c.List()
	assert.Equal(t, "second", entries[0].Query, "oldest entry was evicted")
	assert.Equal(t, "third", entries[1].Query)
	assert.Equal(t, "fourth", entries[2].Query)
}

func TestListOldestFirst(t *testing.T) {
	c := New(3)
	c.Push(entry("a"))
	c.Push(entry("b"))

	entries := c.List()
	assert.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Query)
	assert.Equal(t, "b", entries[1].Query)
}

func TestGet(t *testing.T) {
	c := New(3)
	c.Push(entry("a"))
	c.Push(entry("b"))

	got, ok := c.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "a", got.Query)

	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(-1)
	assert.False(t, ok)
}

func TestReadingNeverReordersEviction(t *testing.T) {
	c := New(3)
	c.Push(entry("first"))
	c.Push(entry("second"))
	c.Push(entry("third"))

	// Browsing history must not promote entries.
	c.List()
	c.Get(0)

	c.Push(entry("fourth"))
	entries := c.List()
	assert.Equal(t, "second", entries[0].Query, "eviction stays insertion-ordered after reads")
}

func TestDefaultCapacity(t *testing.T) {
	c := New(0)
	for _, q := range []string{"a", "b", "c", "d"} {
		c.Push(entry(q))
	}
	assert.Equal(t, DefaultCapacity, c.Len())
}
