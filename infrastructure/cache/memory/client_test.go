package memory

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	key := "test-key"
	value := []byte("test-value")
	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	_, err := cache.Get(context.Background(), "missing")

	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "ephemeral", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	_, err := cache.Get(ctx, "ephemeral")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss after expiry", err)
	}
}

func TestMemoryCache_Set_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	if err := cache.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, "forever")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get returned %s, want v", string(got))
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	if err := cache.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should return error for cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err == nil {
		t.Error("Set should return error for cancelled context")
	}
}
