package pause

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestNextWithinRange(t *testing.T) {
	p := New(time.Millisecond, 1, rand.New(rand.NewPCG(1, 2)))

	seen := map[time.Duration]bool{}
	for i := 0; i < 200; i++ {
		d := p.Next()
		if d != 0 && d != time.Millisecond {
			t.Fatalf("unexpected pause %v", d)
		}
		seen[d] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both 0 and 1 units over 200 draws, got %v", seen)
	}
}

func TestNextNegativeMaxUnits(t *testing.T) {
	p := New(time.Second, -4, nil)
	if d := p.Next(); d != 0 {
		t.Errorf("got %v, want 0", d)
	}
}

func TestSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Sleep(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("zero sleep: got %v, want context.Canceled", err)
	}
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("long sleep: got %v, want context.Canceled", err)
	}
}

func TestSleepCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	start := time.Now()
	err := Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("sleep was not interrupted")
	}
}

func TestPauseCompletes(t *testing.T) {
	p := New(time.Millisecond, 1, nil)
	if err := p.Pause(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
