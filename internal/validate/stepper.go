package validate

import (
	"fmt"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Stepper validates cumulative +1/-1 clicks toward a target count. The value
// clamps at the declared bounds; overshooting keeps the level Pending so the
// player can step back.
type Stepper struct {
	core
	goal  levels.StepperGoal
	value int
}

func newStepper(g *levels.StepperGoal) *Stepper {
	return &Stepper{goal: *g, value: g.Initial}
}

func (m *Stepper) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click {
		return pending
	}

	switch ev.Target {
	case m.goal.IncrementID:
		if m.value < m.goal.Max {
			m.value++
		}
	case m.goal.DecrementID:
		if m.value > m.goal.Min {
			m.value--
		}
	default:
		return pending
	}

	if m.value == m.goal.TargetValue {
		return m.complete(fmt.Sprintf("reached %d", m.value))
	}
	return pending
}

func (m *Stepper) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	return PhaseIdle
}

// Value returns the current count for rendering.
func (m *Stepper) Value() int { return m.value }

// Goal returns the stepper parameters for rendering.
func (m *Stepper) Goal() levels.StepperGoal { return m.goal }
