package llm

import (
	"context"
	"testing"
	"time"
)

func TestRPSLimiter_NilIsNoOp(t *testing.T) {
	var l *rpsLimiter
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire on nil limiter: %v", err)
	}
	l.Stop()
}

func TestRPSLimiter_DisabledForNonPositiveRate(t *testing.T) {
	if l := newRPSLimiter(0, 5); l != nil {
		t.Fatal("rps 0 should disable the limiter")
	}
	if l := newRPSLimiter(-1, 5); l != nil {
		t.Fatal("negative rps should disable the limiter")
	}
}

func TestRPSLimiter_BurstAvailableImmediately(t *testing.T) {
	l := newRPSLimiter(1, 3)
	defer l.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 0; i < 3; i++ {
		if err := l.Acquire(ctx); err != nil {
			t.Fatalf("burst token %d: %v", i, err)
		}
	}
}

func TestRPSLimiter_AcquireHonorsContext(t *testing.T) {
	l := newRPSLimiter(0.001, 1)
	defer l.Stop()

	// Drain the single burst token.
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Acquire(ctx); err != context.DeadlineExceeded {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

func TestRPSLimiter_StopUnblocksWaiters(t *testing.T) {
	l := newRPSLimiter(0.001, 1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- l.Acquire(context.Background()) }()
	l.Stop()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("want Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Acquire did not return after Stop")
	}
}
