package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions limits uploads to the photograph formats the client
// form can produce.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AllowedExtension reports whether the original upload name carries a
// supported photograph extension.
func AllowedExtension(originalName string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(originalName))]
}

// FileStore persists uploaded photographs under generated unique names in
// a flat directory. The directory is created on first use.
type FileStore struct {
	dir   string
	names *NameGenerator
}

func NewFileStore(dir string, names *NameGenerator) *FileStore {
	if names == nil {
		names = NewNameGenerator()
	}
	return &FileStore{
		dir:   dir,
		names: names,
	}
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes the upload content to a new file and returns the generated
// file name.
func (s *FileStore) Save(content io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory %s: %w", s.dir, err)
	}

	name := s.names.FileName(originalName)
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", target, err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to write file %s: %w", target, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", target, err)
	}

	return name, nil
}

// Read returns the content of a stored file by its generated name. The
// name is restricted to a bare file name to keep reads inside the store
// directory.
func (s *FileStore) Read(name string) ([]byte, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid stored file name: %q", name)
	}
	return os.ReadFile(filepath.Join(s.dir, name))
}
