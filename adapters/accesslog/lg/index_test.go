package lg

import (
	"context"
	"testing"

	"github.com/rendau/rester/adapters/accesslog"
	lgZap "github.com/rendau/rester/adapters/logger/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	s := New(lgZap.NewFromLogger(zap.New(core)), "")

	err := s.Log(context.Background(), accesslog.Record{
		accesslog.FieldUri:        "http://example.com",
		accesslog.FieldStatusCode: 200,
	})
	if err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage(defaultMsg).All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[accesslog.FieldUri] != "http://example.com" {
		t.Errorf("uri = %v, want http://example.com", ctx[accesslog.FieldUri])
	}
	if ctx[accesslog.FieldStatusCode] != int64(200) {
		t.Errorf("status_code = %#v, want int64(200)", ctx[accesslog.FieldStatusCode])
	}
}
