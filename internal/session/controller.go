// Package session owns the lifecycle of attempting one level: it constructs
// the validation machine, feeds it normalized events, enforces timeouts, and
// reports finished attempts to the progression service.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/validate"
)

// Phase is the lifecycle state of the session itself.
type Phase int

const (
	NotStarted Phase = iota
	Active
	Completed
	Failed
	Abandoned
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// ErrLocked is returned when starting a level whose predecessor is not
// completed.
var ErrLocked = errors.New("level is locked")

// ErrNoAttempts is returned when a bounded retry policy is exhausted.
var ErrNoAttempts = errors.New("no attempts remaining")

// ErrActive is returned when starting while a session is already running.
// Exactly one validation machine may be live at a time.
var ErrActive = errors.New("a session is already active")

// Config wires a controller to its collaborators.
type Config struct {
	Registry *levels.Registry
	Progress *progress.Service

	// Scheduler delivers timeout and toast-expiry callbacks; defaults to
	// WallScheduler.
	Scheduler Scheduler

	// Now is the wall clock, overridable in tests; defaults to time.Now.
	Now func() time.Time

	// Emit receives the TimerExpired pseudo-events the controller schedules.
	// The host must route them back into HandleEvent on its event loop.
	// Required when any level has a timeout or expiring toasts.
	Emit func(ev event.Event)
}

// Controller runs level attempts one at a time.
type Controller struct {
	cfg Config

	phase     Phase
	spec      levels.Spec
	machine   validate.Machine
	outcome   validate.Outcome
	attemptID string
	startedAt time.Time
	duration  time.Duration
	cancels   []func()
}

// NewController creates an idle controller.
func NewController(cfg Config) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = WallScheduler{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{cfg: cfg}
}

// Start begins an attempt at the given level. It fails with
// levels.ErrNotFound for unknown IDs, ErrLocked when the predecessor is not
// completed, ErrNoAttempts when a bounded retry policy is spent, and
// ErrActive while another attempt is running.
func (c *Controller) Start(ctx context.Context, levelID string) error {
	if c.phase == Active {
		return ErrActive
	}

	spec, err := c.cfg.Registry.Get(levelID)
	if err != nil {
		return err
	}

	if c.cfg.Progress != nil {
		unlocked, err := c.cfg.Progress.IsUnlocked(ctx, levelID)
		if err != nil {
			return err
		}
		if !unlocked {
			return fmt.Errorf("%w: %q", ErrLocked, levelID)
		}
		if spec.MaxAttempts > 0 {
			rec, err := c.cfg.Progress.Record(ctx, levelID)
			if err != nil {
				return err
			}
			if !rec.Completed && rec.Attempts >= spec.MaxAttempts {
				return fmt.Errorf("%w: %q", ErrNoAttempts, levelID)
			}
		}
	}

	machine, err := validate.New(spec)
	if err != nil {
		return err
	}

	c.spec = spec
	c.machine = machine
	c.outcome = validate.Outcome{}
	c.attemptID = uuid.NewString()
	c.startedAt = c.cfg.Now()
	c.duration = 0
	c.phase = Active

	c.armTimers()
	return nil
}

// armTimers schedules the level timeout and any toast expiries as injected
// TimerExpired pseudo-events.
func (c *Controller) armTimers() {
	schedule := func(delayMs int64, target string) {
		cancel := c.cfg.Scheduler.AfterFunc(time.Duration(delayMs)*time.Millisecond, func() {
			if c.cfg.Emit != nil {
				c.cfg.Emit(event.Event{
					Type:   event.TimerExpired,
					Target: target,
					TimeMs: delayMs,
				})
			}
		})
		c.cancels = append(c.cancels, cancel)
	}

	if c.spec.TimeoutMs > 0 {
		schedule(c.spec.TimeoutMs, validate.TimeoutTarget)
	}
	if g := c.spec.Goal.Toast; g != nil {
		for _, t := range g.Toasts {
			if t.ExpiresMs > 0 {
				schedule(t.ExpiresMs, t.ID)
			}
		}
	}
}

// stopTimers cancels every armed timer. Stale callbacks that already fired
// land on a non-Active controller and are ignored there.
func (c *Controller) stopTimers() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
}

// HandleEvent feeds one normalized event to the active machine and settles
// the session if the outcome is terminal. Events arriving outside an active
// session are documented no-ops returning the settled outcome.
func (c *Controller) HandleEvent(ctx context.Context, ev event.Event) (validate.Outcome, error) {
	if c.phase != Active {
		return c.outcome, nil
	}

	out := c.machine.Feed(ev)
	c.outcome = out

	switch out.Status {
	case validate.Completed:
		return out, c.settle(ctx, Completed)
	case validate.Failed:
		return out, c.settle(ctx, Failed)
	}
	return out, nil
}

// settle stops the clock and timers, transitions to the terminal phase, and
// records the attempt.
func (c *Controller) settle(ctx context.Context, terminal Phase) error {
	c.stopTimers()
	c.duration = c.cfg.Now().Sub(c.startedAt)
	c.phase = terminal

	if c.cfg.Progress == nil {
		return nil
	}
	_, err := c.cfg.Progress.RecordAttempt(ctx, c.spec.ID, terminal == Completed, c.duration)
	return err
}

// Abandon cancels a running attempt. The attempt still counts, but no
// completion is written. Abandoning a non-active session is a no-op.
func (c *Controller) Abandon(ctx context.Context) error {
	if c.phase != Active {
		return nil
	}
	c.machine.Cancel()
	return c.settle(ctx, Abandoned)
}

// CanRetry reports whether the current level may be attempted again under
// its retry policy.
func (c *Controller) CanRetry(ctx context.Context) (bool, error) {
	if c.phase == NotStarted {
		return false, nil
	}
	if c.spec.MaxAttempts == 0 {
		return true, nil
	}
	if c.cfg.Progress == nil {
		return true, nil
	}
	rec, err := c.cfg.Progress.Record(ctx, c.spec.ID)
	if err != nil {
		return false, err
	}
	return rec.Completed || rec.Attempts < c.spec.MaxAttempts, nil
}

// Phase returns the session lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Spec returns the spec of the current (or last) level.
func (c *Controller) Spec() levels.Spec { return c.spec }

// Machine returns the active validation machine, nil before the first Start.
func (c *Controller) Machine() validate.Machine { return c.machine }

// Outcome returns the most recent outcome.
func (c *Controller) Outcome() validate.Outcome { return c.outcome }

// AttemptID returns the unique id of the current attempt.
func (c *Controller) AttemptID() string { return c.attemptID }

// Duration returns the settled attempt duration, or the running elapsed time
// while Active.
func (c *Controller) Duration() time.Duration {
	if c.phase == Active {
		return c.cfg.Now().Sub(c.startedAt)
	}
	return c.duration
}
