// Package storage persists encoded artifacts for the HTTP surface. Each
// artifact is the raw run-code bytes keyed by a KSUID, so an artifact id
// sorts by creation time and can be handed back to a client as a receipt.
package storage

import (
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Errors
var (
	ErrArtifactNotFound = &StorageError{"artifact not found"}
)

// StorageError represents an artifact store error
type StorageError struct {
	Message string
}

func (e *StorageError) Error() string {
	return e.Message
}

// ArtifactStore is a pebble-backed blob store for encoded artifacts
type ArtifactStore struct {
	db *pebble.DB
}

// NewArtifactStore opens (or creates) the store at path
func NewArtifactStore(path string) (*ArtifactStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &ArtifactStore{db: db}, nil
}

// Put stores an encoded artifact and returns its id. Writes are synced:
// once a client holds an id, the artifact survives a crash.
func (s *ArtifactStore) Put(encoded []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), encoded, pebble.Sync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Get returns a copy of the artifact bytes for id
func (s *ArtifactStore) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, ErrArtifactNotFound
		}
		return nil, err
	}
	defer closer.Close()

	// data is only valid until closer.Close
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the artifact for id. Deleting an unknown id is not an error.
func (s *ArtifactStore) Delete(id ksuid.KSUID) error {
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// Count returns the number of stored artifacts
func (s *ArtifactStore) Count() (int, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	n := 0
	for iter.First(); iter.Valid(); iter.Next() {
		n++
	}
	return n, iter.Error()
}

// Close closes the underlying database
func (s *ArtifactStore) Close() error {
	return s.db.Close()
}
