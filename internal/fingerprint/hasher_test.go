package fingerprint

import (
	"os"
	"path/filepath"
	"testing"
)

// SHA-256 of zero bytes.
const emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestHashDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "subdir_b.csv")
	content := []byte("id,name\n1,alpha\n2,beta\n")
	if err := os.WriteFile(a, content, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, content, 0644); err != nil {
		t.Fatal(err)
	}

	hashA, err := Hash(a)
	if err != nil {
		t.Fatalf("Hash(a) failed: %v", err)
	}
	hashB, err := Hash(b)
	if err != nil {
		t.Fatalf("Hash(b) failed: %v", err)
	}
	if hashA != hashB {
		t.Errorf("same content under different paths should hash equal: %s != %s", hashA, hashB)
	}
	if len(hashA) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(hashA))
	}
}

func TestHashEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Hash(path)
	if err != nil {
		t.Fatalf("hashing an empty file should succeed: %v", err)
	}
	if got != emptyDigest {
		t.Errorf("expected %s, got %s", emptyDigest, got)
	}
}

func TestHashMissingFile(t *testing.T) {
	if _, err := Hash(filepath.Join(t.TempDir(), "gone.csv")); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}
