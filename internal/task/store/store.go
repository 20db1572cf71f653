package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task/repository"
	pkgLog "ai-task-manager/pkg/log"
)

// ErrPersist marks a backend write failure. The in-memory collection
// still reflects the attempted mutation, so the caller may retry
// persistence without rebuilding the record.
var ErrPersist = errors.New("failed to persist task collection")

// Store owns the ordered task collection: most recently added first.
// Every mutation writes through to the injected backend before returning.
type Store struct {
	backend repository.Backend
	l       pkgLog.Logger

	// The intake pipeline is single-actor, but the HTTP consumer serves
	// requests concurrently.
	mu      sync.Mutex
	records []model.Task
}

// New creates a Store over the given backend. Call Load before use.
func New(backend repository.Backend, l pkgLog.Logger) *Store {
	return &Store{
		backend: backend,
		l:       l,
	}
}

// Load reads the persisted collection from the backend. An empty slot or
// a malformed payload yields an empty collection; load never fails the
// caller over bad persisted data.
func (s *Store) Load(ctx context.Context) error {
	payload, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("backend load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(payload) == 0 {
		s.records = nil
		return nil
	}

	var records []model.Task
	if err := json.Unmarshal(payload, &records); err != nil {
		s.l.Warnf(ctx, "store: discarding malformed persisted payload: %v", err)
		s.records = nil
		return nil
	}

	s.records = records
	return nil
}

// Add prepends the record and persists the collection synchronously.
func (s *Store) Add(ctx context.Context, t model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]model.Task{t}, s.records...)
	return s.persist(ctx)
}

// Remove deletes the record with the given id and persists. A missing
// id is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return s.persist(ctx)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.Task{}, false
}

// List returns a snapshot copy of the collection, most recent first.
func (s *Store) List() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.records))
	copy(out, s.records)
	return out
}

// persist writes the full collection through to the backend.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersist, err)
	}
	if err := s.backend.Save(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
