// Package memory provides a map-backed EntityStore used by tests and by
// local runs with STORE_DRIVER=memory.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dentalflow/clinic-system/internal/core/domain"
)

// Store keeps all documents and indexes in process memory. Unlike the
// durable backends, document and index writes happen under one mutex here,
// so the pair is actually atomic.
type Store struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	index map[string][]string
}

func NewStore() *Store {
	return &Store{
		docs:  make(map[string][]byte),
		index: make(map[string][]string),
	}
}

func key(kind, id string) string { return kind + "/" + id }

func (s *Store) Get(_ context.Context, kind, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.docs[key(kind, id)]
	if !ok {
		return nil, domain.ErrNoDocument
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *Store) Put(_ context.Context, kind, id string, doc json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs[key(kind, id)] = stored
	return nil
}

func (s *Store) Delete(_ context.Context, kind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(kind, id)
	_, existed := s.docs[k]
	delete(s.docs, k)
	return existed, nil
}

func (s *Store) ListIDs(_ context.Context, kind string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.index[kind]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *Store) AddToIndex(_ context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.index[kind] {
		if existing == id {
			return nil
		}
	}
	s.index[kind] = append(s.index[kind], id)
	return nil
}

func (s *Store) RemoveFromIndex(_ context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.index[kind]
	for i, existing := range ids {
		if existing == id {
			s.index[kind] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}
