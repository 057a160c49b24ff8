package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func expectNoCall(t *testing.T, calls <-chan time.Time) {
	t.Helper()
	select {
	case at := <-calls:
		t.Fatalf("unexpected call at %v", at)
	case <-time.After(50 * time.Millisecond):
	}
}

func expectCall(t *testing.T, calls <-chan time.Time) time.Time {
	t.Helper()
	select {
	case at := <-calls:
		return at
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function was not called")
		return time.Time{}
	}
}

func TestThreeKeystrokesTriggerOneCall(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(300*time.Millisecond, clock)
	calls := make(chan time.Time, 4)
	var count atomic.Int32

	fire := func() {
		count.Add(1)
		calls <- clock.Now()
	}

	start := clock.Now()
	d.Trigger(fire)
	clock.Advance(50 * time.Millisecond)
	d.Trigger(fire)
	clock.Advance(50 * time.Millisecond)
	d.Trigger(fire)
	lastKeystroke := clock.Now()

	clock.Advance(299 * time.Millisecond)
	expectNoCall(t, calls)

	clock.Advance(time.Millisecond)
	at := expectCall(t, calls)

	if got := at.Sub(lastKeystroke); got != 300*time.Millisecond {
		t.Errorf("call issued %v after the last keystroke, want 300ms", got)
	}
	if got := at.Sub(start); got != 400*time.Millisecond {
		t.Errorf("call issued %v after the first keystroke, want 400ms", got)
	}

	clock.Advance(time.Second)
	expectNoCall(t, calls)
	if got := count.Load(); got != 1 {
		t.Errorf("calls = %d, want exactly 1", got)
	}
}

func TestCancelDropsPendingCall(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(300*time.Millisecond, clock)
	calls := make(chan time.Time, 1)

	d.Trigger(func() { calls <- clock.Now() })
	if !d.Pending() {
		t.Fatal("expected a pending call after Trigger")
	}
	d.Cancel()
	if d.Pending() {
		t.Fatal("expected nothing pending after Cancel")
	}

	clock.Advance(time.Second)
	expectNoCall(t, calls)
}

func TestSeparatedTriggersEachRun(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := New(100*time.Millisecond, clock)
	calls := make(chan time.Time, 2)

	d.Trigger(func() { calls <- clock.Now() })
	clock.Advance(100 * time.Millisecond)
	expectCall(t, calls)

	d.Trigger(func() { calls <- clock.Now() })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("timer not registered: %v", err)
	}
	clock.Advance(100 * time.Millisecond)
	expectCall(t, calls)
}
