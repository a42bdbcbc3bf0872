package charset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	if err := os.WriteFile(path, []byte("id,name\n1,alpha\n2,beta\n"), 0644); err != nil {
		t.Fatal(err)
	}

	det := Detect(path, 32*1024)
	if det.Encoding == "" {
		t.Fatal("expected an encoding name")
	}
	if det.Confidence < 0 || det.Confidence > 1 {
		t.Errorf("confidence out of range: %f", det.Confidence)
	}
}

func TestDetectEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	det := Detect(path, 1024)
	if det.Encoding != DefaultEncoding {
		t.Errorf("expected fallback %s, got %s", DefaultEncoding, det.Encoding)
	}
	if det.Confidence != 0 {
		t.Errorf("fallback confidence should be 0, got %f", det.Confidence)
	}
}

func TestDetectMissingFileFallsBack(t *testing.T) {
	det := Detect(filepath.Join(t.TempDir(), "gone.csv"), 1024)
	if det.Encoding != DefaultEncoding || det.Confidence != 0 {
		t.Errorf("expected fallback, got %+v", det)
	}
}

func TestDetectBoundedSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.csv")
	content := "header\n" + strings.Repeat("value\n", 10000)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// A tiny sample must still produce a guess, not an error.
	det := Detect(path, 16)
	if det.Encoding == "" {
		t.Fatal("expected a guess from a bounded sample")
	}
}

func TestNewReaderLatin1(t *testing.T) {
	raw := []byte{'c', 'a', 'f', 0xe9} // "café" in ISO-8859-1
	r := NewReader(bytes.NewReader(raw), "iso-8859-1")
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(got) != "café" {
		t.Errorf("expected café, got %q", got)
	}
}

func TestNewReaderUnknownNameIsIdentity(t *testing.T) {
	raw := []byte("plain text")
	r := NewReader(bytes.NewReader(raw), "no-such-encoding")
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("unknown encoding should pass bytes through, got %q", got)
	}
}
