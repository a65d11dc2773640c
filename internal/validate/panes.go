package validate

import (
	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// paneMachine is the shared engine behind Tabs and Accordion: select the
// right pane, then activate the right child inside it. Selecting a wrong
// pane never fails the level, it only fails to progress, and a child is only
// reachable while its pane is showing.
type paneMachine struct {
	core
	panes       []levels.Pane
	targetPane  string
	targetChild string
	active      string
	workPhase   Phase
	toggleClose bool // accordion headers toggle; tab headers do not
}

func (m *paneMachine) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click {
		return pending
	}

	if pane := findPane(m.panes, ev.Target); pane != nil {
		if m.toggleClose && m.active == pane.ID {
			m.active = ""
		} else {
			m.active = pane.ID
		}
		return pending
	}

	// Children are only live inside the showing pane.
	if m.active == "" {
		return pending
	}
	activePane := findPane(m.panes, m.active)
	if activePane == nil || !containsID(activePane.ChildIDs, ev.Target) {
		return pending
	}
	if m.active == m.targetPane && ev.Target == m.targetChild {
		return m.complete("activated " + ev.Target)
	}
	return pending
}

func (m *paneMachine) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if m.active == m.targetPane && m.active != "" {
		return m.workPhase
	}
	return PhaseIdle
}

// Active returns the showing pane id, or "" when none is.
func (m *paneMachine) Active() string { return m.active }

// Tabs validates Idle → TabSelected → Completed.
type Tabs struct {
	paneMachine
	goal levels.TabsGoal
}

func newTabs(g *levels.TabsGoal) *Tabs {
	return &Tabs{
		paneMachine: paneMachine{
			panes:       g.Tabs,
			targetPane:  g.TargetTabID,
			targetChild: g.TargetChildID,
			workPhase:   PhaseTabSelected,
		},
		goal: *g,
	}
}

// Goal returns the tabs parameters for rendering.
func (m *Tabs) Goal() levels.TabsGoal { return m.goal }

// Accordion validates Idle → SectionOpen → Completed. Unlike tabs, clicking
// the open section's header collapses it.
type Accordion struct {
	paneMachine
	goal levels.AccordionGoal
}

func newAccordion(g *levels.AccordionGoal) *Accordion {
	return &Accordion{
		paneMachine: paneMachine{
			panes:       g.Sections,
			targetPane:  g.TargetSectionID,
			targetChild: g.TargetChildID,
			workPhase:   PhaseSectionOpen,
			toggleClose: true,
		},
		goal: *g,
	}
}

// Goal returns the accordion parameters for rendering.
func (m *Accordion) Goal() levels.AccordionGoal { return m.goal }

func findPane(panes []levels.Pane, id string) *levels.Pane {
	for i := range panes {
		if panes[i].ID == id {
			return &panes[i]
		}
	}
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
