package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chill-mix-ios.json")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")

	same, err := SameContent(path, []byte("data"))
	if err != nil || same {
		t.Fatalf("missing file: same=%v err=%v", same, err)
	}

	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		data []byte
		want bool
	}{
		{[]byte("data"), true},
		{[]byte("dat4"), false},
		{[]byte("longer data"), false},
	}
	for _, tt := range tests {
		same, err := SameContent(path, tt.data)
		if err != nil {
			t.Fatal(err)
		}
		if same != tt.want {
			t.Fatalf("SameContent(%q) = %v, want %v", tt.data, same, tt.want)
		}
	}
}
