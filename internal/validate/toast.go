package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Toast validates dismissing one specific notification among several that
// appear and expire concurrently. Dismissing a distractor is a no-op; the
// target's own expiry firing first is the one event-driven failure in the
// widget set besides the level timeout.
type Toast struct {
	core
	goal    levels.ToastGoal
	visible map[string]bool
}

func newToast(g *levels.ToastGoal) *Toast {
	vis := make(map[string]bool, len(g.Toasts))
	for _, t := range g.Toasts {
		vis[t.ID] = true
	}
	return &Toast{goal: *g, visible: vis}
}

func (m *Toast) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}

	switch ev.Type {
	case event.Click:
		if !m.visible[ev.Target] {
			return pending
		}
		m.visible[ev.Target] = false
		if ev.Target == m.goal.TargetToastID {
			return m.complete("dismissed " + ev.Target)
		}

	case event.TimerExpired:
		if !m.visible[ev.Target] {
			return pending
		}
		m.visible[ev.Target] = false
		if ev.Target == m.goal.TargetToastID {
			return m.fail("target toast expired")
		}
	}
	return pending
}

func (m *Toast) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	return PhaseIdle
}

// Visible reports whether the given toast is still on screen.
func (m *Toast) Visible(id string) bool { return m.visible[id] }

// Goal returns the toast parameters for rendering.
func (m *Toast) Goal() levels.ToastGoal { return m.goal }
