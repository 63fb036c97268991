package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hasbyte1/go-vectors/vector"
)

func TestSQLiteStoreCorruptPayload(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "vectors.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	_, err = s.db.Exec(`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)`,
		"broken", `{"x":1,"y":2}`, "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background(), "broken"); !errors.Is(err, vector.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}
