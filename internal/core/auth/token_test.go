package auth

import (
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", time.Hour).WithClock(fixedClock(now))

	token, err := codec.Issue("alice@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v", claims.ExpiresAt.Time)
	}
	if !claims.IssuedAt.Time.Equal(now) {
		t.Fatalf("unexpected issued_at: %v", claims.IssuedAt.Time)
	}
}

func TestTokenCodec_Expiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", time.Hour).WithClock(fixedClock(now))

	token, err := codec.Issue("alice@example.com", "member", time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Advance the clock past expiry.
	codec.WithClock(fixedClock(now.Add(2 * time.Minute)))

	if _, err := codec.Decode(token); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_TamperDetection(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}

	// Corrupt the first byte of each segment: header, payload, signature.
	offsets := []int{
		0,
		len(parts[0]) + 1,
		len(parts[0]) + len(parts[1]) + 2,
	}
	for _, off := range offsets {
		tampered := []byte(token)
		tampered[off] ^= 0x01
		if _, err := codec.Decode(string(tampered)); err != ErrTokenMalformed {
			t.Fatalf("expected ErrTokenMalformed for token tampered at byte %d, got %v", off, err)
		}
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue("alice@example.com", "", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Decode(token); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenCodec_MalformedInput(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	for _, bad := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := codec.Decode(bad); err != ErrTokenMalformed {
			t.Fatalf("expected ErrTokenMalformed for %q, got %v", bad, err)
		}
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", 30*time.Minute).WithClock(fixedClock(now))

	token, err := codec.Issue("bob@example.com", "member", 0)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(30 * time.Minute)) {
		t.Fatalf("expected default ttl expiry, got %v", claims.ExpiresAt.Time)
	}
}
