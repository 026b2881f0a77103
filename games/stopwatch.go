// Package games holds the per-session round state machines for the four
// drill games, plus the stopwatch and the keyed round store.
package games

import (
	"fmt"
	"time"
)

// Stopwatch accumulates elapsed time across pause/resume cycles. There is no
// background ticking; elapsed time is always computed on demand from wall
// clock timestamps, since the surrounding UI recomputes everything per
// interaction.
type Stopwatch struct {
	running   bool
	startedAt time.Time
	elapsed   time.Duration
	now       func() time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start is a no-op if already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.now()
}

// Pause folds the running interval into the accumulated total. No-op if not
// running.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.startedAt)
	s.running = false
}

// Reset zeroes the accumulated time and stops the watch.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

// Running reports whether the watch is currently accumulating time.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed combines the accumulated total with any in-progress interval.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + s.now().Sub(s.startedAt)
	}
	return s.elapsed
}

// String renders the elapsed time as minutes:seconds.tenths.
func (s *Stopwatch) String() string {
	e := s.Elapsed()
	minutes := int(e / time.Minute)
	seconds := int(e/time.Second) % 60
	tenths := int(e/(100*time.Millisecond)) % 10
	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths)
}
