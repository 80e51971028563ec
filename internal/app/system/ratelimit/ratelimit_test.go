package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	l := New(2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if l.Allow("a") {
		t.Error("third request within window should be blocked")
	}
	if !l.Allow("b") {
		t.Error("other keys are counted independently")
	}

	l.Reset("a")
	if !l.Allow("a") {
		t.Error("reset should clear the count")
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	if !l.Allow("a") {
		t.Fatal("first request should pass")
	}
	if l.Allow("a") {
		t.Fatal("second request should be blocked")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("a") {
		t.Error("request after window expiry should pass")
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	if got := ClientIP(r); got != "10.0.0.1" {
		t.Errorf("ClientIP = %q, want 10.0.0.1", got)
	}

	r.Header.Set("X-Real-IP", "10.0.0.2")
	if got := ClientIP(r); got != "10.0.0.2" {
		t.Errorf("ClientIP = %q, want 10.0.0.2", got)
	}

	r.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	if got := ClientIP(r); got != "10.0.0.3" {
		t.Errorf("ClientIP = %q, want 10.0.0.3", got)
	}
}

func TestLoginLimiter(t *testing.T) {
	ll := NewLoginLimiterWithConfig(100, time.Minute, 2, time.Minute)

	r := httptest.NewRequest("POST", "/auth/login", nil)
	r.RemoteAddr = "10.0.0.1:54321"

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "User@Uni.edu"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	// Email matching is case-insensitive.
	if ok, reason := ll.Check(r, "user@uni.edu"); ok {
		t.Error("third attempt for the same account should be blocked")
	} else if reason == "" {
		t.Error("blocked attempt should carry a reason")
	}

	ll.ResetEmail("USER@uni.edu")
	if ok, _ := ll.Check(r, "user@uni.edu"); !ok {
		t.Error("reset should clear the per-account count")
	}
}
