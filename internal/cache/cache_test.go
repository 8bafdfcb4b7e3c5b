package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k := Key("https://example.test/activities?experience=hiking")
	if !strings.HasPrefix(k, "alpinequery:v1:") {
		t.Errorf("key missing version prefix: %q", k)
	}
	if k != Key("https://example.test/activities?experience=hiking") {
		t.Error("key generation should be deterministic")
	}
	if k == Key("different input") {
		t.Error("distinct inputs should hash to distinct keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache should miss")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = (%q, %v)", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key should miss")
	}

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("cleared cache should miss")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestDiskCache(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := Key("catalog-request")
	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, found := c.Get(key)
	if !found || !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Get = (%q, %v)", got, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("deleted entry should miss")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestLayeredCache_Promotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Entry must survive a lost memory layer via the disk layer
	cold := &LayeredCache{
		memory: NewMemoryCache(time.Minute, time.Minute),
		disk:   NewDiskCache(dir, time.Minute),
	}
	got, found := cold.Get("k")
	if !found || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("disk layer miss: (%q, %v)", got, found)
	}

	// The hit is promoted to memory
	if _, found := cold.memory.Get("k"); !found {
		t.Error("disk hit should be promoted to the memory layer")
	}
}
