package session

import "time"

// Scheduler is the host timer facility. Callbacks must be delivered on the
// host's event loop; the returned cancel func revokes the timer and is safe
// to call more than once.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// WallScheduler schedules on the wall clock via time.AfterFunc. The caller
// owns marshalling the callback onto its loop.
type WallScheduler struct{}

func (WallScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler is a deterministic scheduler for tests: timers fire only
// when Advance moves the fake clock past their deadline.
type ManualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// NewManualScheduler creates a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &manualTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward and fires due timers in deadline order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		next := s.nextDue()
		if next == nil {
			return
		}
		next.fired = true
		next.fn()
	}
}

func (s *ManualScheduler) nextDue() *manualTimer {
	var due *manualTimer
	for _, t := range s.timers {
		if t.cancelled || t.fired || t.at > s.now {
			continue
		}
		if due == nil || t.at < due.at {
			due = t
		}
	}
	return due
}

// Pending returns how many timers are armed but not yet fired or cancelled.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}
