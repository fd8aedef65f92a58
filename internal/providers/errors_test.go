package providers

import (
	"fmt"
	"testing"
	"time"
)

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	base := &RateLimitError{Resource: "players_profiles", StatusCode: 429, RetryAfter: 2 * time.Second}
	wrapped := fmt.Errorf("fetching profile: %w", base)

	rl, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected rate limit error to unwrap")
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected 2s retry-after, got %v", rl.RetryAfter)
	}
}

func TestAsRateLimitErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsRateLimitError(fmt.Errorf("plain failure")); ok {
		t.Fatal("expected plain error not to match")
	}
	if _, ok := AsRateLimitError(nil); ok {
		t.Fatal("expected nil error not to match")
	}
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429}
	if got := err.Error(); got != "upstream rate limited (status=429)" {
		t.Fatalf("unexpected message: %s", got)
	}
}
