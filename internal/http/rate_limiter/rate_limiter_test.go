package rate_limiter

import (
	"testing"
	"time"
)

func TestLimiter_BurstThenReject(t *testing.T) {
	l := New(0.001, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("expected request over burst to be rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("expected separate budget per client")
	}
}

func TestLimiter_CleanupIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(1, 1)
	l.now = func() time.Time { return now }

	l.GetVisitor("old")
	now = now.Add(10 * time.Minute)
	l.GetVisitor("fresh")

	if removed := l.Cleanup(5 * time.Minute); removed != 1 {
		t.Errorf("expected 1 visitor removed, got %d", removed)
	}
	if l.Visitors() != 1 {
		t.Errorf("expected 1 visitor left, got %d", l.Visitors())
	}
}
