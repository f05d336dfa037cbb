package crypto

import (
	"strings"
	"testing"
)

func TestHashPasswordProducesSaltedHashes(t *testing.T) {
	first, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Fatal("equal plaintexts must not hash to comparable output")
	}
	if strings.Contains(first, "hunter2") {
		t.Fatal("hash leaks the plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !VerifyPassword(hash, "correct horse battery") {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Fatal("expected mismatched password to fail")
	}
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatal("expected malformed hash to fail verification")
	}
}
