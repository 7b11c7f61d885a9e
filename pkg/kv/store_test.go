package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_DeleteAndClear(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")
	s.Set("other", "value")

	s.Delete("key")
	_, ok := s.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestStore_Keys(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New[int, int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(i, i*2)
			s.Get(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
