package task

import "github.com/phoenix-pm/phoenix/internal/models"

// Store is the authoritative in-memory task collection for the current
// project. The remote store stays the source of truth: the store is
// reconciled by full reload after structural changes and by per-mutation
// local patch otherwise. Single-threaded, UI-event-driven access; no
// locking.
type Store struct {
	tasks []*models.Task
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded collection
func (s *Store) Replace(tasks []*models.Task) {
	s.tasks = tasks
}

// All returns the current collection. Callers must not reorder it; grouping
// sorts its own copies.
func (s *Store) All() []*models.Task {
	return s.tasks
}

// Get finds a task by id
func (s *Store) Get(id string) (*models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Add appends a newly created task
func (s *Store) Add(t *models.Task) {
	s.tasks = append(s.tasks, t)
}

// Remove deletes a task from the collection
func (s *Store) Remove(id string) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// ApplyLocalPatch updates the in-memory copy only. Used after a confirmed
// remote write; never triggers a re-fetch, so quick edits and drags stay
// cheap and flicker-free.
func (s *Store) ApplyLocalPatch(id string, patch models.TaskPatch) (*models.Task, bool) {
	t, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	patch.Apply(t)
	return t, true
}
