package passwords_test

import (
	"strings"
	"testing"

	"github.com/hosteldesk/hosteldesk/internal/app/system/passwords"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := passwords.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !passwords.Verify(hash, "correct horse battery") {
		t.Error("Verify should accept the original password")
	}
	if passwords.Verify(hash, "wrong password") {
		t.Error("Verify should reject a different password")
	}
}

func TestHash_DistinctSalts(t *testing.T) {
	a, err := passwords.Hash("same password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	b, err := passwords.Hash("same password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestVerify_BadHash(t *testing.T) {
	if passwords.Verify("not-a-bcrypt-hash", "whatever") {
		t.Error("Verify should reject a malformed hash")
	}
}

func TestHash_ProducesBcrypt(t *testing.T) {
	hash, err := passwords.Hash("secret-pass")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt digest, got %q", hash)
	}
}
