package validate

import (
	"fmt"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Slider validates a continuous drag: Idle → Dragging → Settled. The level
// completes when the handle is released within tolerance of the target;
// releasing outside tolerance returns to Idle so the player can try again.
type Slider struct {
	core
	goal     levels.SliderGoal
	dragging bool
	value    float64
}

func newSlider(g *levels.SliderGoal) *Slider {
	return &Slider{goal: *g, value: g.Min}
}

func (m *Slider) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}

	switch ev.Type {
	case event.PointerDown:
		if ev.Target != m.goal.TrackID {
			return pending
		}
		m.dragging = true
		m.value = m.clampValue(ev.Value)

	case event.PointerMove:
		// Moves outside a drag are spurious; ignore them.
		if !m.dragging {
			return pending
		}
		m.value = m.clampValue(ev.Value)

	case event.PointerUp:
		if !m.dragging {
			return pending
		}
		m.dragging = false
		m.value = m.clampValue(ev.Value)
		diff := m.value - m.goal.TargetValue
		if diff < 0 {
			diff = -diff
		}
		if diff <= m.goal.Tolerance {
			return m.complete(fmt.Sprintf("settled at %g", m.value))
		}
	}

	return pending
}

func (m *Slider) clampValue(v float64) float64 {
	if v < m.goal.Min {
		return m.goal.Min
	}
	if v > m.goal.Max {
		return m.goal.Max
	}
	return v
}

func (m *Slider) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if m.dragging {
		return PhaseDragging
	}
	return PhaseIdle
}

// Value returns the current handle position for rendering.
func (m *Slider) Value() float64 { return m.value }

// Goal returns the slider parameters for rendering.
func (m *Slider) Goal() levels.SliderGoal { return m.goal }
