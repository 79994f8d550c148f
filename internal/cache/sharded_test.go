package cache

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// constHasher sends every key to shard 0 so eviction order is observable.
func constHasher(string) uint64 { return 0 }

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestShardedDefaultCapacity(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if got := c.Stats().Capacity; got != DefaultCapacity*ShardCount {
		t.Errorf("Capacity = %d, want %d", got, DefaultCapacity*ShardCount)
	}
}

func TestShardedLRUEviction(t *testing.T) {
	c := NewSharded[string, int](3, constHasher)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a") // a becomes most recently used
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestShardedGetOrCompute(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := c.GetOrCompute("k", compute)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCompute = %d, %v, want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrCompute("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrCompute error = %v, want %v", err, boom)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be cached")
	}

	st := c.Stats()
	if st.Hits != 2 {
		t.Errorf("Hits = %d, want 2", st.Hits)
	}
	if rate := st.HitRate(); rate <= 0 || rate >= 1 {
		t.Errorf("HitRate = %f, want between 0 and 1", rate)
	}
}

func TestShardedDeleteFuncClear(t *testing.T) {
	c := NewSharded[string, int](10, StringHasher)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("ab", 3)

	isA := func(k string) bool { return strings.HasPrefix(k, "a") }
	if n := c.DeleteFunc(isA); n != 2 {
		t.Errorf("DeleteFunc() = %d, want 2", n)
	}
	if n := c.DeleteFunc(isA); n != 0 {
		t.Errorf("second DeleteFunc() = %d, want 0", n)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("Get(b) missing after DeleteFunc")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[string, int](64, StringHasher)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				k := strconv.Itoa((g * i) % 200)
				if _, err := c.GetOrCompute(k, func() (int, error) { return i, nil }); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() > 64*ShardCount {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[int]()
	n1 := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	l.MoveToFront(n1)
	if k, _ := l.RemoveOldest(); k != 2 {
		t.Errorf("RemoveOldest() = %d, want 2", k)
	}
	l.Remove(n1)
	l.Remove(n1) // already detached
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	l.Clear()
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list reported a key")
	}
}
