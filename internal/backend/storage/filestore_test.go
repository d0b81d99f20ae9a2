package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Save_CreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewFileStore(dir, nil)

	content := []byte{0x01, 0x02, 0x03}
	name, err := store.Save(bytes.NewReader(content), "visit.jpg")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if name == "" {
		t.Fatal("expected non-empty generated name")
	}

	written, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Errorf("stored content = %v; want %v", written, content)
	}
}

func TestFileStore_Save_DistinctNamesForIdenticalUploads(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)

	content := []byte("same photograph")
	first, err := store.Save(bytes.NewReader(content), "a.png")
	if err != nil {
		t.Fatalf("Save #1 error: %v", err)
	}
	second, err := store.Save(bytes.NewReader(content), "a.png")
	if err != nil {
		t.Fatalf("Save #2 error: %v", err)
	}

	// Two identical submissions produce two distinct stored files
	if first == second {
		t.Fatalf("expected distinct file names, both were %q", first)
	}
}

func TestFileStore_Read_RejectsPathTraversal(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)

	if _, err := store.Read("../secret"); err == nil {
		t.Fatal("expected error for path traversal name")
	}
	if _, err := store.Read(""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestAllowedExtension(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.gif", true},
		{"photo.webp", true},
		{"report.pdf", false},
		{"script.js", false},
		{"noextension", false},
	}

	for _, testCase := range testCases {
		if got := AllowedExtension(testCase.name); got != testCase.want {
			t.Errorf("AllowedExtension(%q) = %v; want %v", testCase.name, got, testCase.want)
		}
	}
}
