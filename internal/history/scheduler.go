package history

import (
	"sync"
	"time"
)

// scheduler is a cancellable single-slot delayed task. Scheduling again
// before the task fires pushes the deadline out; flush runs a pending task
// immediately. The callback runs without the scheduler lock held, so it may
// schedule again or cancel from inside itself.
type scheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	fn      func()
}

func newScheduler(fn func()) *scheduler {
	return &scheduler{fn: fn}
}

// schedule arms the task to fire after d, replacing any pending deadline.
func (s *scheduler) schedule(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = true
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *scheduler) fire() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()
	s.fn()
}

// cancel drops a pending task, if any.
func (s *scheduler) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
}

// flush runs a pending task now instead of waiting for its deadline.
func (s *scheduler) flush() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
	s.mu.Unlock()
	s.fn()
}
