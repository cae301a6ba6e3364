package rng_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lost-woods/pokerdeck/src/rng"
)

func TestHealthCheckRNG_AllSameFails(t *testing.T) {
	h := rng.NewHealth()
	r := bytes.NewReader(make([]byte, 256))
	if err := rng.HealthCheckRNG(r, h); err == nil {
		t.Fatalf("expected error for all-identical sample")
	}
}

func TestHealthCheckRNG_ShortReadFails(t *testing.T) {
	if err := rng.HealthCheckRNG(bytes.NewReader(make([]byte, 10)), nil); err == nil {
		t.Fatalf("expected error for short sample")
	}
}

func TestHealthCheckRNG_OKOnVariedBytes(t *testing.T) {
	h := rng.NewHealth()
	if err := rng.HealthCheckRNG(&byteCycleReader{}, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSystem_StartsHealthy(t *testing.T) {
	r, h := rng.NewSystem()
	if ok, _, _ := h.Snapshot(); !ok {
		t.Fatalf("system source should start healthy")
	}
	if err := rng.HealthCheckRNG(r, h); err != nil {
		t.Fatalf("system source failed health check: %v", err)
	}
}

func TestOpen_DefaultsToSystem(t *testing.T) {
	r, h, err := rng.Open(rng.SerialConfig{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := r.(*rng.LockedReader); !ok {
		t.Fatalf("expected a locked reader, got %T", r)
	}
	if ok, _, _ := h.Snapshot(); !ok {
		t.Fatalf("expected healthy source")
	}
}

func TestPeriodicHealthCheck_FlagsStuckSource(t *testing.T) {
	h := rng.NewHealth()
	h.Set(true, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rng.PeriodicHealthCheck(ctx, bytes.NewReader(make([]byte, 4*64)), h, time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if ok, _, _ := h.Snapshot(); !ok {
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatalf("stuck source never flagged")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}
