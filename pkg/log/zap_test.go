package log_test

import (
	"context"
	"testing"

	"linkylink/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	} {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.WithRequestID(context.Background(), "r"), "hello %s", "world")
	}

	log.NewNop().Info(context.Background(), "discarded")
}
