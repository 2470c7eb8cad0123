package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cloud-ru/compound-calc-go/internal/config"
)

func TestKey(t *testing.T) {
	a := Key("compound_interest", "1000", "5", "10", "Annual")
	b := Key("compound_interest", "1000", "5", "10", "Annual")
	if a != b {
		t.Errorf("Key() is not deterministic: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "compound_interest:") {
		t.Errorf("Key() = %s, want operation prefix", a)
	}
	if a == Key("savings_growth", "1000", "5", "10", "Annual") {
		t.Error("different operations should not share keys")
	}
	if Key("op", "ab", "c") == Key("op", "a", "bc") {
		t.Error("part boundaries should affect the key")
	}
}

func TestLRUCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2, time.Minute)

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("Get(missing) hit")
	}

	_ = c.Set(ctx, "a", []byte("1"))
	_ = c.Set(ctx, "b", []byte("2"))
	if v, ok, err := c.Get(ctx, "a"); !ok || err != nil || string(v) != "1" {
		t.Errorf("Get(a) = %q, %v, %v", v, ok, err)
	}

	// b самый старый после обращения к a
	_ = c.Set(ctx, "c", []byte("3"))
	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Error("b should have been evicted")
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}

	_ = c.Set(ctx, "a", []byte("updated"))
	if v, _, _ := c.Get(ctx, "a"); string(v) != "updated" {
		t.Errorf("Get(a) = %q, want updated", v)
	}
}

func TestLRUCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewLRUCache(10, time.Minute)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "a", []byte("1"))
	_ = c.Set(ctx, "b", []byte("2"))

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("expired entry returned")
	}
	if removed := c.CleanExpired(); removed != 1 {
		t.Errorf("CleanExpired() = %d, want 1", removed)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestLRUCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(64, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i+j)%80)
				_ = c.Set(ctx, key, []byte(key))
				_, _, _ = c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if c.Size() > 64 {
		t.Errorf("Size() = %d, exceeds bound 64", c.Size())
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	c, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New(memory) error = %v", err)
	}
	if _, ok := c.(*LRUCache); !ok {
		t.Errorf("New(memory) = %T, want *LRUCache", c)
	}

	cfg.CacheBackend = config.CacheBackendNone
	c, err = New(ctx, cfg)
	if err != nil {
		t.Fatalf("New(none) error = %v", err)
	}
	_ = c.Set(ctx, "a", []byte("1"))
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("Nop cache returned a hit")
	}

	cfg.CacheBackend = "memcached"
	if _, err := New(ctx, cfg); err == nil {
		t.Error("New(memcached) error = nil")
	}
}
