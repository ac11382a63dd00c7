package player

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stop is the shared cancellation flag between the signal handler and the
// playback loop. Raising it is idempotent and unblocks any sleeper.
type Stop struct {
	raised atomic.Bool
	once   sync.Once
	ch     chan struct{}
}

func NewStop() *Stop {
	return &Stop{ch: make(chan struct{})}
}

// Raise marks the player as cancelled.
func (s *Stop) Raise() {
	s.raised.Store(true)
	s.once.Do(func() { close(s.ch) })
}

// Raised reports whether cancellation was requested.
func (s *Stop) Raised() bool {
	return s.raised.Load()
}

// Sleep blocks for d and reports whether the full duration elapsed; it
// returns false immediately when cancellation is raised.
func (s *Stop) Sleep(d time.Duration) bool {
	if s.raised.Load() {
		return false
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.ch:
		return false
	}
}
