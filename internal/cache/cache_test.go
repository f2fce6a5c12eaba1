package cache

import (
	"errors"
	"strconv"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a value in an empty slot")
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %v, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](8)
	calls := 0
	load := func(k string) (int, error) {
		calls++
		return strconv.Atoi(k)
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("42", load)
		if err != nil || v != 42 {
			t.Fatalf("GetOrLoad(42) = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	if _, err := c.GetOrLoad("x", load); err == nil {
		t.Error("GetOrLoad(x) error = nil, want parse error")
	}
	if _, ok := c.Get("x"); ok {
		t.Error("failed load must not be cached")
	}

	sentinel := errors.New("boom")
	if _, err := c.GetOrLoad("y", func(string) (int, error) { return 0, sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("GetOrLoad error = %v, want %v", err, sentinel)
	}
}

func TestCacheStatsAndClear(t *testing.T) {
	c := New[string, int](8)
	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.Limit != 8 {
		t.Errorf("Stats() = %+v", s)
	}

	c.Clear()
	if s := c.Stats(); s.Len != 0 || s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats() after Clear = %+v", s)
	}
	if c.order.Len() != 0 {
		t.Errorf("lru Len() after Clear = %d", c.order.Len())
	}
}

func BenchmarkCacheGetOrLoad(b *testing.B) {
	c := New[string, int](64)
	load := func(k string) (int, error) { return len(k), nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrLoad("#ff8800", load)
	}
}
