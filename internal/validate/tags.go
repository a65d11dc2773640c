package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Tags validates a multi-select: clicking a chip toggles it, and the level
// completes the moment the selected set equals the target set exactly, order
// irrelevant. Over-selection is correctable by removal, never a failure.
type Tags struct {
	core
	goal     levels.TagsGoal
	selected map[string]bool
}

func newTags(g *levels.TagsGoal) *Tags {
	sel := make(map[string]bool, len(g.InitialIDs))
	for _, id := range g.InitialIDs {
		sel[id] = true
	}
	return &Tags{goal: *g, selected: sel}
}

func (m *Tags) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click || !isOption(m.goal.TagIDs, ev.Target) {
		return pending
	}

	if m.selected[ev.Target] {
		delete(m.selected, ev.Target)
	} else {
		m.selected[ev.Target] = true
	}

	if m.matchesTarget() {
		return m.complete("selection matched")
	}
	return pending
}

func (m *Tags) matchesTarget() bool {
	if len(m.selected) != len(m.goal.TargetTagIDs) {
		return false
	}
	for _, id := range m.goal.TargetTagIDs {
		if !m.selected[id] {
			return false
		}
	}
	return true
}

func (m *Tags) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	return PhaseIdle
}

// Selected reports whether the given tag is currently selected.
func (m *Tags) Selected(id string) bool { return m.selected[id] }

// SelectedCount returns how many tags are selected.
func (m *Tags) SelectedCount() int { return len(m.selected) }

// Goal returns the tag parameters for rendering.
func (m *Tags) Goal() levels.TagsGoal { return m.goal }
