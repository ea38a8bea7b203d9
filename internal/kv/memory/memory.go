// Package memory provides an in-process kv.Store used for tests and for
// running without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/Rapou7/BudTracker/internal/kv"
)

type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	out := append([]byte(nil), b...)
	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error {
	return nil
}
