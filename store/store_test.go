package store_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-vectors/store"
	"github.com/hasbyte1/go-vectors/vector"
)

// backends opens one fresh store per backend.
func backends(t *testing.T) map[string]store.Store {
	t.Helper()
	dir := t.TempDir()

	fileStore, err := store.Open(store.BackendFile, filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	sqliteStore, err := store.Open(store.BackendSQLite, filepath.Join(dir, "db", "vectors.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	memStore, err := store.Open(store.BackendMemory, "")
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}

	stores := map[string]store.Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
		"memory": memStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c := vector.NewCollection(vector.New(3, 4), vector.New(5, 6))
			if err := s.Save(ctx, "points", c); err != nil {
				t.Fatal(err)
			}

			got, err := s.Load(ctx, "points")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.All(), got.All()); diff != "" {
				t.Errorf("Load mismatch (-want +got):\n%s", diff)
			}

			// The loaded collection is a copy.
			got.Add(vector.New(7, 8))
			again, err := s.Load(ctx, "points")
			if err != nil {
				t.Fatal(err)
			}
			if again.Len() != 2 {
				t.Errorf("mutating a loaded collection changed the store: Len = %d", again.Len())
			}
		})
	}
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, "a", vector.NewCollection(vector.New(1, 1))); err != nil {
				t.Fatal(err)
			}
			if err := s.Save(ctx, "a", vector.NewCollection()); err != nil {
				t.Fatal(err)
			}
			got, err := s.Load(ctx, "a")
			if err != nil {
				t.Fatal(err)
			}
			if !got.IsEmpty() {
				t.Errorf("replaced collection has %d items", got.Len())
			}
		})
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"b", "a", "a-b", "c_1"} {
				if err := s.Save(ctx, n, vector.NewCollection(vector.New(1, 2))); err != nil {
					t.Fatal(err)
				}
			}
			names, err := s.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{"a", "a-b", "b", "c_1"}, names); diff != "" {
				t.Errorf("List mismatch (-want +got):\n%s", diff)
			}

			if err := s.Delete(ctx, "a"); err != nil {
				t.Fatal(err)
			}
			if _, err := s.Load(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("Load after Delete err = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("second Delete err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestListEmpty(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			names, err := s.List(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{}, names); diff != "" {
				t.Errorf("List mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestInvalidNames(t *testing.T) {
	ctx := context.Background()
	bad := []string{"", "../escape", "a b", "x.json", string(make([]byte, 65))}
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range bad {
				if err := s.Save(ctx, n, vector.NewCollection()); !errors.Is(err, store.ErrInvalidName) {
					t.Errorf("Save(%q) err = %v, want ErrInvalidName", n, err)
				}
				if _, err := s.Load(ctx, n); !errors.Is(err, store.ErrInvalidName) {
					t.Errorf("Load(%q) err = %v, want ErrInvalidName", n, err)
				}
				if err := s.Delete(ctx, n); !errors.Is(err, store.ErrInvalidName) {
					t.Errorf("Delete(%q) err = %v, want ErrInvalidName", n, err)
				}
			}
		})
	}
}

func TestSaveUnencodable(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		if name == "memory" {
			continue // memory keeps values, never encodes
		}
		t.Run(name, func(t *testing.T) {
			bad := vector.NewCollection(vector.New(0, math.Inf(1)))
			if err := s.Save(ctx, "bad", bad); !errors.Is(err, vector.ErrEncode) {
				t.Errorf("err = %v, want ErrEncode", err)
			}
			if _, err := s.Load(ctx, "bad"); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("failed Save left a collection behind: %v", err)
			}
		})
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`[{"x":1}]`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background(), "broken"); !errors.Is(err, vector.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestFileStoreIgnoresStrayFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"notes.txt", "bad name.json", ".hidden.tmp"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(`[]`), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatal(err)
	}
	names, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("List = %v, want none", names)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vectors.db")

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "keep", vector.NewCollection(vector.New(-1.5, 2.25))); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = store.NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Load(ctx, "keep")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]vector.Vector{vector.New(-1.5, 2.25)}, got.All()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := store.Open("redis", ""); !errors.Is(err, store.ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, "x", vector.NewCollection()); !errors.Is(err, context.Canceled) {
				t.Errorf("Save err = %v, want context.Canceled", err)
			}
		})
	}
}
