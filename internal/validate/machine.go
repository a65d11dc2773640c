// Package validate implements the per-widget validation state machines.
// Each widget kind gets its own machine behind one interface; the session
// controller never branches on the kind after construction.
package validate

import (
	"fmt"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Status is the verdict carried by an Outcome.
type Status int

const (
	Pending Status = iota
	Completed
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the verdict after feeding one event. Completed and Failed are
// terminal and sticky: once emitted, every later Feed returns the same
// outcome unchanged.
type Outcome struct {
	Status Status
	Reason string
}

// pending is the zero outcome for in-progress levels.
var pending = Outcome{Status: Pending}

// Phase is the observable working state of a machine, exposed so a
// presentation layer can render progress. Phases are shared across machine
// kinds; each machine uses the subset that applies to it.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseTabSelected
	PhaseSectionOpen
	PhaseModalOpen
	PhaseMenuOpen
	PhaseTyping
	PhaseSuggestions
	PhaseReordering
	PhaseCompleted
	PhaseFailed
)

// TimeoutTarget is the reserved target id of the TimerExpired pseudo-event
// the session controller injects when the level deadline passes.
const TimeoutTarget = "level-timeout"

// Machine is the uniform contract every widget kind implements. Feed
// processes one normalized event and returns the resulting outcome; Cancel
// marks the instance inert, making any later Feed a no-op.
type Machine interface {
	Feed(ev event.Event) Outcome
	Cancel()
	Phase() Phase
}

// New constructs the machine matching the spec's widget kind. The spec must
// have passed registry validation; New only dispatches.
func New(spec levels.Spec) (Machine, error) {
	switch spec.Kind {
	case levels.KindSlider:
		return newSlider(spec.Goal.Slider), nil
	case levels.KindRadioGroup:
		return newRadioGroup(spec.Goal.RadioGroup), nil
	case levels.KindStepper:
		return newStepper(spec.Goal.Stepper), nil
	case levels.KindStarRating:
		return newStarRating(spec.Goal.StarRating), nil
	case levels.KindTabs:
		return newTabs(spec.Goal.Tabs), nil
	case levels.KindAccordion:
		return newAccordion(spec.Goal.Accordion), nil
	case levels.KindModal:
		return newModal(spec.Goal.Modal), nil
	case levels.KindContextMenu:
		return newContextMenu(spec.Goal.ContextMenu), nil
	case levels.KindAutocomplete:
		return newAutocomplete(spec.Goal.Autocomplete), nil
	case levels.KindSortableList:
		return newSortable(spec.Goal.Sortable), nil
	case levels.KindMultiSelectTags:
		return newTags(spec.Goal.Tags), nil
	case levels.KindToast:
		return newToast(spec.Goal.Toast), nil
	}
	return nil, fmt.Errorf("%w: no machine for widget kind %q", levels.ErrConfig, spec.Kind)
}

// core holds the lifecycle state every machine shares: sticky terminal
// outcomes and cooperative cancellation.
type core struct {
	outcome   Outcome
	done      bool
	cancelled bool
}

// gate returns the outcome to emit without processing when the machine is
// already terminal or cancelled. ok is false in that case.
func (c *core) gate(ev event.Event) (Outcome, bool) {
	if c.done {
		return c.outcome, false
	}
	if c.cancelled {
		return pending, false
	}
	// The level deadline fails any machine uniformly.
	if ev.Type == event.TimerExpired && ev.Target == TimeoutTarget {
		return c.fail("level timeout"), false
	}
	return pending, true
}

func (c *core) complete(reason string) Outcome {
	c.done = true
	c.outcome = Outcome{Status: Completed, Reason: reason}
	return c.outcome
}

func (c *core) fail(reason string) Outcome {
	c.done = true
	c.outcome = Outcome{Status: Failed, Reason: reason}
	return c.outcome
}

// Cancel marks the machine inert. Calling it twice, or after a terminal
// outcome, is a no-op.
func (c *core) Cancel() {
	c.cancelled = true
}

// terminalPhase maps a settled core to its phase, or ok=false while pending.
func (c *core) terminalPhase() (Phase, bool) {
	if !c.done {
		return PhaseIdle, false
	}
	if c.outcome.Status == Completed {
		return PhaseCompleted, true
	}
	return PhaseFailed, true
}
