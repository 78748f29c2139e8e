package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBurstThenEmpty(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)

	if !rl.Allow() || !rl.Allow() {
		t.Fatal("initial burst should be allowed up to capacity")
	}
	if rl.Allow() {
		t.Fatal("bucket is empty, request should be rejected")
	}
}

func TestRateLimiterFractionalRefill(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	rl.tokens = 0

	// Two waits that each mint less than one token must add up: backdating
	// lastTime stands in for elapsed wall time.
	rl.lastTime = rl.lastTime.Add(-300 * time.Millisecond)
	if rl.Allow() {
		t.Fatal("0.6 tokens should not admit a request")
	}
	rl.lastTime = rl.lastTime.Add(-300 * time.Millisecond)
	if !rl.Allow() {
		t.Fatal("accumulated refill credit should admit a request")
	}
}

func TestRateLimiterCapacityCap(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.lastTime = rl.lastTime.Add(-time.Minute)

	if !rl.Allow() {
		t.Fatal("refilled bucket should admit a request")
	}
	if rl.Allow() {
		t.Fatal("refill must not exceed capacity")
	}
}