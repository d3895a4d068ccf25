package builder

import (
	"context"
	"errors"
	"sync"
)

// ErrDocumentNotFound is returned when a store has no snapshot for the id.
var ErrDocumentNotFound = errors.New("builder: document not found")

// InMemoryDocumentStore keeps full-document snapshots keyed by document id.
// The snapshot is the unit of save; partial updates never reach the store.
type InMemoryDocumentStore struct {
	mu   sync.RWMutex
	data map[string]Document
	meta map[string]map[string]any
}

// NewInMemoryDocumentStore creates an empty store.
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		data: make(map[string]Document),
		meta: make(map[string]map[string]any),
	}
}

// Load returns a copy of the stored snapshot.
func (s *InMemoryDocumentStore) Load(_ context.Context, documentID string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data[documentID]
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	return CloneDocument(doc), nil
}

// Save replaces the stored snapshot wholesale.
func (s *InMemoryDocumentStore) Save(_ context.Context, doc Document, meta map[string]any) error {
	if doc.ID == "" {
		return errors.New("builder: document id is required to save")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[doc.ID] = CloneDocument(doc)
	if meta != nil {
		s.meta[doc.ID] = cloneContentMap(meta)
	}
	return nil
}

// Metadata returns the metadata recorded with the last save, if any.
func (s *InMemoryDocumentStore) Metadata(documentID string) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.meta[documentID]
	return cloneContentMap(meta), ok
}
