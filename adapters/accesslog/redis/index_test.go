package redis

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/rendau/rester/adapters/accesslog"
)

func TestLog(t *testing.T) {
	addr := os.Getenv("RESTER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RESTER_TEST_REDIS_ADDR is not set")
	}

	ctx := context.Background()

	s := New(OptionsSt{Url: addr, Key: "rester_test_logs", MaxLen: 2})

	cl := s.r
	defer cl.Del(ctx, "rester_test_logs")

	for _, code := range []int{200, 201, 202} {
		if err := s.Log(ctx, accesslog.Record{accesslog.FieldStatusCode: code}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := cl.LRange(ctx, "rester_test_logs", 0, -1).Result()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	rec := map[string]any{}
	if err = json.Unmarshal([]byte(items[1]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec[accesslog.FieldStatusCode] != float64(202) {
		t.Errorf("last status_code = %v, want 202", rec[accesslog.FieldStatusCode])
	}
}

func TestLogUnreachable(t *testing.T) {
	cl := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer cl.Close()

	s := NewWithClient(cl, OptionsSt{Key: "logs"})

	err := s.Log(context.Background(), accesslog.Record{accesslog.FieldUri: "u"})
	if err == nil {
		t.Fatal("Log() error = nil, want dial error")
	}
	if !strings.Contains(err.Error(), "logs") {
		t.Errorf("Log() error = %v, want the key in the message", err)
	}
}
