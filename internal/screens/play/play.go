// Package play hosts one level attempt: it owns the host-side interaction
// state, normalizes key presses into the canonical event stream, and feeds
// the session controller.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/session"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/layout"
	"github.com/abhisek/gauntlet/internal/validate"
)

// PlayScreen runs one level. The terminal keyboard is the pointer here:
// number keys click the numbered elements, space grabs and releases the
// slider handle, and typing drives the autocomplete input.
type PlayScreen struct {
	ctrl *session.Controller
	svc  *progress.Service
	spec levels.Spec

	norm    *event.Normalizer
	started time.Time
	input   components.TextInput
	slider  float64
	err     error
}

var _ screen.Screen = (*PlayScreen)(nil)

// New creates a play screen for the given level. The attempt starts in Init.
func New(ctrl *session.Controller, svc *progress.Service, spec levels.Spec) *PlayScreen {
	return &PlayScreen{
		ctrl: ctrl,
		svc:  svc,
		spec: spec,
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.startAttempt(), tickCmd())
}

// startAttempt begins (or restarts) the attempt and resets host-side state.
func (p *PlayScreen) startAttempt() tea.Cmd {
	p.err = p.ctrl.Start(context.Background(), p.spec.ID)
	if p.err != nil {
		return nil
	}

	p.norm = event.NewNormalizer(0)
	p.started = time.Now()

	if g := p.spec.Goal.Slider; g != nil {
		p.slider = g.Min
	}
	if g := p.spec.Goal.Autocomplete; g != nil {
		p.input = components.NewTextInput("type to search", 40)
		return tea.Batch(tickCmd(), p.input.Init())
	}
	return nil
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerFiredMsg:
		if _, err := p.ctrl.HandleEvent(context.Background(), msg.Event); err != nil {
			p.err = err
		}
		return p, p.settledCmd()

	case clockTickMsg:
		if p.ctrl.Phase() == session.Active {
			return p, tickCmd()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.ctrl.Phase() != session.Active {
		switch key {
		case "r":
			if ok, _ := p.ctrl.CanRetry(context.Background()); ok && p.err == nil {
				return p, p.startAttempt()
			}
		case "esc", "enter", "q":
			return p, popCmd()
		}
		return p, nil
	}

	if key == "esc" {
		if err := p.ctrl.Abandon(context.Background()); err != nil {
			p.err = err
		}
		return p, tea.Batch(p.settledCmd(), popCmd())
	}

	if raws, handled := p.rawsForKey(msg); handled {
		cmd := p.feed(raws...)
		p.syncInput()
		return p, cmd
	}

	// Remaining keys belong to the autocomplete text field, if there is one.
	if p.spec.Goal.Autocomplete != nil {
		before := p.input.Value()
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		if after := p.input.Value(); after != before {
			feedCmd := p.feed(event.RawInput{
				Kind:   event.RawKey,
				Target: p.spec.Goal.Autocomplete.InputID,
				Text:   after,
			})
			return p, tea.Batch(cmd, feedCmd)
		}
		return p, cmd
	}

	return p, nil
}

// feed stamps, normalizes, and delivers raw inputs to the controller.
func (p *PlayScreen) feed(raws ...event.RawInput) tea.Cmd {
	for _, raw := range raws {
		raw.TimeMs = p.elapsedMs()
		events, _ := p.norm.Push(raw)
		for _, ev := range events {
			if _, err := p.ctrl.HandleEvent(context.Background(), ev); err != nil {
				p.err = err
			}
		}
	}
	return p.settledCmd()
}

// settledCmd broadcasts the terminal outcome once the attempt is over.
func (p *PlayScreen) settledCmd() tea.Cmd {
	phase := p.ctrl.Phase()
	if phase == session.Active || phase == session.NotStarted {
		return nil
	}
	levelID := p.spec.ID
	completed := phase == session.Completed
	return func() tea.Msg {
		return AttemptSettledMsg{LevelID: levelID, Completed: completed}
	}
}

// syncInput pulls the machine's text back into the input field after a
// selection filled it (picking a wrong suggestion writes its label).
func (p *PlayScreen) syncInput() {
	if m, ok := p.machine().(*validate.Autocomplete); ok {
		if m.Text() != p.input.Value() {
			p.input.SetValue(m.Text())
		}
	}
}

func (p *PlayScreen) elapsedMs() int64 {
	return time.Since(p.started).Milliseconds()
}

func (p *PlayScreen) Title() string {
	return p.spec.Name
}

// KeyHints supplies the footer bindings for the active widget.
func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.ctrl.Phase() != session.Active {
		hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		if ok, _ := p.ctrl.CanRetry(context.Background()); ok && p.err == nil {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Retry"}}, hints...)
		}
		return hints
	}

	hints := widgetHints(p.spec.Kind)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Give up"})
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// machine returns the live validation machine, nil before the first start.
func (p *PlayScreen) machine() validate.Machine {
	return p.ctrl.Machine()
}
