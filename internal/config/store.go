package config

import "sync"

// Store holds the current Tool value and notifies registered listeners when
// it changes. The UI mutates it; the pipeline reads it on every pointer event.
type Store struct {
	mu        sync.RWMutex
	current   Tool
	listeners []func(Tool)
}

// NewStore creates a store seeded with the given configuration.
func NewStore(t Tool) *Store {
	return &Store{current: t}
}

// Get returns the current configuration value.
func (s *Store) Get() Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the configuration and notifies listeners.
func (s *Store) Set(t Tool) {
	s.mu.Lock()
	s.current = t
	listeners := make([]func(Tool), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
}

// Update applies fn to a copy of the current value and publishes the result.
func (s *Store) Update(fn func(*Tool)) {
	s.mu.RLock()
	t := s.current
	s.mu.RUnlock()
	fn(&t)
	s.Set(t)
}

// OnChange registers a listener invoked after every Set.
func (s *Store) OnChange(fn func(Tool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
