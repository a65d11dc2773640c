package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// ContextMenu validates Idle → MenuOpen → Completed. Only a right-click on
// the designated surface opens the menu; a left-click there never does.
// Clicking outside the menu closes it without penalty, and selecting an
// option while the menu is closed is ignored.
type ContextMenu struct {
	core
	goal levels.ContextMenuGoal
	open bool
}

func newContextMenu(g *levels.ContextMenuGoal) *ContextMenu {
	return &ContextMenu{goal: *g}
}

func (m *ContextMenu) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}

	switch ev.Type {
	case event.RightClick:
		if ev.Target == m.goal.SurfaceID {
			m.open = true
		} else {
			// Right-clicking elsewhere closes any showing menu.
			m.open = false
		}

	case event.Click:
		if !m.open {
			return pending
		}
		if isOption(m.goal.OptionIDs, ev.Target) {
			m.open = false
			if ev.Target == m.goal.TargetOptionID {
				return m.complete("selected " + ev.Target)
			}
			return pending
		}
		// Outside click closes the menu.
		m.open = false
	}
	return pending
}

func (m *ContextMenu) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if m.open {
		return PhaseMenuOpen
	}
	return PhaseIdle
}

// Open reports whether the menu is currently showing.
func (m *ContextMenu) Open() bool { return m.open }

// Goal returns the context menu parameters for rendering.
func (m *ContextMenu) Goal() levels.ContextMenuGoal { return m.goal }
