package play

import (
	"time"

	"github.com/abhisek/gauntlet/internal/event"
)

// TimerFiredMsg carries a scheduled timer pseudo-event (level timeout or
// toast expiry) back onto the program loop. The app model routes it here.
type TimerFiredMsg struct {
	Event event.Event
}

// AttemptSettledMsg is broadcast when an attempt reaches a terminal state so
// the header and the level list can refresh their progress.
type AttemptSettledMsg struct {
	LevelID   string
	Completed bool
}

// clockTickMsg drives the elapsed/remaining time display once per second.
type clockTickMsg time.Time
