package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Fatalf("expected different hashes for the same plaintext")
	}
	if !h.Verify("s3cret", first) || !h.Verify("s3cret", second) {
		t.Fatalf("both hashes must verify against the original plaintext")
	}
}

func TestHasher_VerifyRejectsWrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("verify accepted a wrong password")
	}
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-hash", "$2a$broken"} {
		if h.Verify("anything", malformed) {
			t.Fatalf("verify accepted malformed hash %q", malformed)
		}
	}
}

func TestHasher_EmptyPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if _, err := h.Hash(""); err != ErrEmptyPassword {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestHasher_CostOutOfRangeFallsBack(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", cost)
	}
}
