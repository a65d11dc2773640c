package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Modal validates Idle → Open → Completed/Dismissed. The modal opens on the
// trigger click, completes on the confirm action, and closes on any dismiss
// action. Dismissal is a non-failing return to Idle unless the spec marks it
// fatal.
type Modal struct {
	core
	goal levels.ModalGoal
	open bool
}

func newModal(g *levels.ModalGoal) *Modal {
	return &Modal{goal: *g}
}

func (m *Modal) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click {
		return pending
	}

	if !m.open {
		if ev.Target == m.goal.TriggerID {
			m.open = true
		}
		// Confirm or dismiss clicks with no modal showing are spurious.
		return pending
	}

	switch {
	case ev.Target == m.goal.ConfirmID:
		return m.complete("confirmed")
	case containsID(m.goal.DismissIDs, ev.Target):
		m.open = false
		if m.goal.FailOnDismiss {
			return m.fail("dismissed")
		}
	}
	return pending
}

func (m *Modal) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if m.open {
		return PhaseModalOpen
	}
	return PhaseIdle
}

// Open reports whether the modal is currently showing.
func (m *Modal) Open() bool { return m.open }

// Goal returns the modal parameters for rendering.
func (m *Modal) Goal() levels.ModalGoal { return m.goal }
