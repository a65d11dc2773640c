package validate

import (
	"strings"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// Key names delivered as KeyInput text when the input is navigated rather
// than edited.
const (
	KeyDown   = "down"
	KeyUp     = "up"
	KeyEnter  = "enter"
	KeyEscape = "escape"
)

// Autocomplete validates Idle → Typing → SuggestionsVisible → Completed.
// KeyInput events on the input carry the full current text; suggestions
// become visible once the text is long enough and matches at least one
// label, and typing past all matches clears them again. Selection happens by
// clicking a visible suggestion or confirming the highlighted one with enter.
type Autocomplete struct {
	core
	goal      levels.AutocompleteGoal
	text      string
	highlight int
}

func newAutocomplete(g *levels.AutocompleteGoal) *Autocomplete {
	return &Autocomplete{goal: *g}
}

func (m *Autocomplete) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}

	switch ev.Type {
	case event.KeyInput:
		if ev.Target != m.goal.InputID {
			return pending
		}
		switch ev.Text {
		case KeyDown:
			if n := len(m.Visible()); n > 0 {
				m.highlight = (m.highlight + 1) % n
			}
		case KeyUp:
			if n := len(m.Visible()); n > 0 {
				m.highlight = (m.highlight + n - 1) % n
			}
		case KeyEnter:
			visible := m.Visible()
			if len(visible) == 0 {
				return pending
			}
			return m.pick(visible[m.highlight].ID)
		case KeyEscape:
			m.text = ""
			m.highlight = 0
		default:
			m.text = ev.Text
			m.highlight = 0
		}

	case event.Click:
		visible := m.Visible()
		for _, sug := range visible {
			if sug.ID == ev.Target {
				return m.pick(sug.ID)
			}
		}
	}
	return pending
}

// pick resolves a selection of a visible suggestion.
func (m *Autocomplete) pick(id string) Outcome {
	if id == m.goal.TargetSuggestionID {
		return m.complete("selected " + id)
	}
	// A wrong selection fills the input with the chosen label, like any
	// autocomplete would, and stays correctable.
	for _, sug := range m.goal.Suggestions {
		if sug.ID == id {
			m.text = sug.Label
			m.highlight = 0
			break
		}
	}
	return pending
}

// Visible returns the suggestions currently showing, in spec order.
func (m *Autocomplete) Visible() []levels.Suggestion {
	if len(m.text) < m.goal.MinChars {
		return nil
	}
	q := strings.ToLower(m.text)
	var out []levels.Suggestion
	for _, sug := range m.goal.Suggestions {
		if strings.HasPrefix(strings.ToLower(sug.Label), q) {
			out = append(out, sug)
		}
	}
	return out
}

func (m *Autocomplete) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	if len(m.Visible()) > 0 {
		return PhaseSuggestions
	}
	if m.text != "" {
		return PhaseTyping
	}
	return PhaseIdle
}

// Text returns the current input text.
func (m *Autocomplete) Text() string { return m.text }

// Highlight returns the index into Visible of the keyboard highlight.
func (m *Autocomplete) Highlight() int { return m.highlight }

// Goal returns the autocomplete parameters for rendering.
func (m *Autocomplete) Goal() levels.AutocompleteGoal { return m.goal }
