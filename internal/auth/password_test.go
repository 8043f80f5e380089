package auth_test

import (
	"testing"

	"github.com/mkendrick/inkwell/internal/auth"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// Cost 4 for fast tests.
	h := auth.NewPasswordHasher(4)

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "secret1" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !h.Verify("secret1", digest) {
		t.Fatal("expected correct password to verify")
	}
	if h.Verify("secret2", digest) {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	h := auth.NewPasswordHasher(4)

	d1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	d2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}

	if d1 == d2 {
		t.Fatal("expected distinct digests for the same plaintext")
	}
	if !h.Verify("secret1", d1) || !h.Verify("secret1", d2) {
		t.Fatal("expected both digests to verify against the plaintext")
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := auth.NewPasswordHasher(4)

	if h.Verify("secret1", "not-a-bcrypt-digest") {
		t.Fatal("expected malformed digest to verify as false")
	}
	if h.Verify("secret1", "") {
		t.Fatal("expected empty digest to verify as false")
	}
}
