package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// RadioGroup validates a single selection. The last click wins; clicking a
// wrong option carries no penalty.
type RadioGroup struct {
	core
	goal     levels.RadioGroupGoal
	selected string
}

func newRadioGroup(g *levels.RadioGroupGoal) *RadioGroup {
	return &RadioGroup{goal: *g}
}

func (m *RadioGroup) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click || !isOption(m.goal.OptionIDs, ev.Target) {
		return pending
	}

	m.selected = ev.Target
	if m.selected == m.goal.TargetOptionID {
		return m.complete("selected " + m.selected)
	}
	return pending
}

func (m *RadioGroup) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	return PhaseIdle
}

// Selected returns the currently selected option id, or "" before any click.
func (m *RadioGroup) Selected() string { return m.selected }

// Goal returns the radio group parameters for rendering.
func (m *RadioGroup) Goal() levels.RadioGroupGoal { return m.goal }

func isOption(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
