package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestSetIdempotency_FirstWins(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	adapter := NewRedisAdapter(client, time.Minute)
	ctx := context.Background()
	key := "request:test:" + uuid.NewString()
	defer client.Del(ctx, key)

	first, err := adapter.SetIdempotency(ctx, key)
	if err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if !first {
		t.Fatal("first set must win")
	}

	second, err := adapter.SetIdempotency(ctx, key)
	if err != nil {
		t.Fatalf("second set failed: %v", err)
	}
	if second {
		t.Fatal("second set within the window must lose")
	}
}

func TestClearIdempotency_ReopensWindow(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	adapter := NewRedisAdapter(client, time.Minute)
	ctx := context.Background()
	key := "request:test:" + uuid.NewString()
	defer client.Del(ctx, key)

	if _, err := adapter.SetIdempotency(ctx, key); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := adapter.ClearIdempotency(ctx, key); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	ok, err := adapter.SetIdempotency(ctx, key)
	if err != nil {
		t.Fatalf("set after clear failed: %v", err)
	}
	if !ok {
		t.Fatal("cleared key must accept a new set")
	}
}

func TestSetIdempotency_WindowExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expiry wait in short mode")
	}
	client := getRedisClient(t)
	defer client.Close()

	adapter := NewRedisAdapter(client, time.Second)
	ctx := context.Background()
	key := "request:test:" + uuid.NewString()
	defer client.Del(ctx, key)

	if _, err := adapter.SetIdempotency(ctx, key); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(1500 * time.Millisecond)

	ok, err := adapter.SetIdempotency(ctx, key)
	if err != nil {
		t.Fatalf("set after expiry failed: %v", err)
	}
	if !ok {
		t.Fatal("expired key must accept a new set")
	}
}
