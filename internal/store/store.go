package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStoreUnavailable is returned when the durable document cannot be read,
// parsed or written. In-memory and durable state may only be assumed
// consistent while this error is absent.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Document persists a whole collection of T as a single JSON array on disk.
// It knows nothing about the element type beyond its JSON shape; callers own
// ordering and identity semantics.
type Document[T any] struct {
	path string
}

// NewDocument creates a document store backed by the file at path.
func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path: path}
}

// Load reads and deserializes the full collection, preserving stored order.
// A missing file is treated as an empty collection so a fresh data directory
// boots cleanly.
func (d *Document[T]) Load() ([]T, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreUnavailable, d.path, err)
	}

	var collection []T
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStoreUnavailable, d.path, err)
	}
	if collection == nil {
		collection = []T{}
	}
	return collection, nil
}

// Save serializes the given collection and replaces the durable copy with it.
// The write goes through a temp file in the same directory followed by a
// rename, so readers never observe a partial document.
func (d *Document[T]) Save(collection []T) error {
	if collection == nil {
		collection = []T{}
	}
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling collection: %v", ErrStoreUnavailable, err)
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", ErrStoreUnavailable, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", ErrStoreUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", ErrStoreUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", ErrStoreUnavailable, d.path, err)
	}
	return nil
}
