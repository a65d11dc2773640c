package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Sortable validates Idle → Reordering → Completed. A PointerDown on an item
// grabs it; the PointerUp target names the slot it takes. The level
// completes only on the exact target permutation; anything short of that is
// Pending with no partial credit.
type Sortable struct {
	core
	goal    levels.SortableGoal
	order   []string
	grabbed string
}

func newSortable(g *levels.SortableGoal) *Sortable {
	order := make([]string, len(g.ItemIDs))
	copy(order, g.ItemIDs)
	return &Sortable{goal: *g, order: order}
}

func (m *Sortable) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}

	switch ev.Type {
	case event.PointerDown:
		if indexOf(m.order, ev.Target) >= 0 {
			m.grabbed = ev.Target
		}

	case event.PointerUp:
		if m.grabbed == "" {
			return pending
		}
		grabbed := m.grabbed
		m.grabbed = ""
		to := indexOf(m.order, ev.Target)
		if to < 0 || ev.Target == grabbed {
			// Dropped outside the list or back on itself: grab cancelled.
			return pending
		}
		m.moveTo(grabbed, to)
		if equalOrder(m.order, m.goal.TargetOrder) {
			return m.complete("order matched")
		}
	}
	return pending
}

// moveTo removes id from the order and reinserts it at index to.
func (m *Sortable) moveTo(id string, to int) {
	from := indexOf(m.order, id)
	if from < 0 {
		return
	}
	m.order = append(m.order[:from], m.order[from+1:]...)
	if to > len(m.order) {
		to = len(m.order)
	}
	m.order = append(m.order[:to], append([]string{id}, m.order[to:]...)...)
}

func (m *Sortable) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if m.grabbed != "" {
		return PhaseReordering
	}
	return PhaseIdle
}

// Order returns the current permutation for rendering.
func (m *Sortable) Order() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Grabbed returns the id of the item being dragged, or "".
func (m *Sortable) Grabbed() string { return m.grabbed }

// Goal returns the sortable parameters for rendering.
func (m *Sortable) Goal() levels.SortableGoal { return m.goal }

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func equalOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
