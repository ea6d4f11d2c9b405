package service

import (
	"sync"
	"time"
)

// GrowthScheduler runs the delayed stage commit after a watering purchase.
// Each user carries a generation counter; Cancel bumps it, so commits
// scheduled under an older generation are dropped instead of mutating a
// replaced session's record.
type GrowthScheduler struct {
	mu    sync.Mutex
	delay time.Duration
	gen   map[string]uint64
}

func NewGrowthScheduler(delay time.Duration) *GrowthScheduler {
	return &GrowthScheduler{delay: delay, gen: make(map[string]uint64)}
}

// Delay is the externally-visible growth duration.
func (s *GrowthScheduler) Delay() time.Duration {
	return s.delay
}

// Schedule runs commit after the growth delay unless the user's generation
// has moved on by then.
func (s *GrowthScheduler) Schedule(username string, commit func()) {
	s.mu.Lock()
	g := s.gen[username]
	s.mu.Unlock()

	time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		current := s.gen[username]
		s.mu.Unlock()
		if current != g {
			return
		}
		commit()
	})
}

// Cancel supersedes every pending commit for the user.
func (s *GrowthScheduler) Cancel(username string) {
	s.mu.Lock()
	s.gen[username]++
	s.mu.Unlock()
}
