package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hasbyte1/go-vectors/vector"
)

const fileExt = ".json"

// FileStore keeps each collection in <dir>/<name>.json
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating dir if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the collection files
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Save writes c to a temporary file and renames it over <name>.json, so a
// failed write never leaves a truncated collection behind
func (s *FileStore) Save(ctx context.Context, name string, c *vector.Collection) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := c.Save(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write collection %q: %w", name, err)
	}
	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace collection %q: %w", name, err)
	}
	return nil
}

// Load reads <name>.json
func (s *FileStore) Load(ctx context.Context, name string) (*vector.Collection, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := vector.LoadCollection(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", name, err)
	}
	return c, nil
}

// Delete removes <name>.json
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(name)
	}
	return err
}

// List returns the names of the *.json files in the store directory
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), fileExt)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	// ReadDir order is by file name, which puts "a-b.json" before "a.json"
	sort.Strings(names)
	return names, nil
}

// Close is a no-op
func (s *FileStore) Close() error { return nil }
