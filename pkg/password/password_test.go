package password_test

import (
	"errors"
	"testing"

	"github.com/forkful/forkful/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	digest, err := password.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest equals the plaintext")
	}

	match, err := password.Compare(digest, "correct horse battery staple")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !match {
		t.Error("expected digest to match its plaintext")
	}
}

func TestCompareMismatch(t *testing.T) {
	digest, err := password.Hash("right")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	match, err := password.Compare(digest, "wrong")
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if match {
		t.Error("wrong password reported as matching")
	}
}

func TestCompareMalformedDigest(t *testing.T) {
	_, err := password.Compare("not-a-bcrypt-digest", "anything")
	if !errors.Is(err, password.ErrHashFormat) {
		t.Errorf("expected ErrHashFormat, got %v", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := password.Hash("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := password.Hash("same input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same input are identical; salting is broken")
	}
}
