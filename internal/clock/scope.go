package clock

import (
	"sync"
	"time"
)

// Scope owns the timers of one view. Cancel stops them all, and a callback
// that was already running past its timer when Cancel happened is dropped.
type Scope struct {
	clock Clock

	mu     sync.Mutex
	gen    uint64
	timers map[Timer]struct{}
}

func NewScope(c Clock) *Scope {
	return &Scope{
		clock:  c,
		timers: make(map[Timer]struct{}),
	}
}

func (s *Scope) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.gen

	var t Timer
	t = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, t)
		live := gen == s.gen
		s.mu.Unlock()

		if live {
			f()
		}
	})
	s.timers[t] = struct{}{}
}

func (s *Scope) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	for t := range s.timers {
		t.Stop()
	}
	clear(s.timers)
}

func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}
