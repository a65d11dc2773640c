// Package app wires the engine to the terminal: it builds the session
// controller, owns the timer channel, and runs the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/screens/levelselect"
	"github.com/abhisek/gauntlet/internal/screens/play"
	"github.com/abhisek/gauntlet/internal/session"
	"github.com/abhisek/gauntlet/internal/store"
	"github.com/abhisek/gauntlet/internal/ui/layout"
)

// Options carries everything the TUI needs. Repo may be nil for
// storage-less play; progress then lives in memory for the process.
type Options struct {
	Registry *levels.Registry
	Repo     store.ProgressRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *progress.Service
	reg    *levels.Registry
	timers <-chan event.Event

	width   int
	height  int
	cleared int
}

func newAppModel(opts Options) AppModel {
	repo := opts.Repo
	if repo == nil {
		repo = store.NewMemoryRepo()
	}
	svc := progress.New(opts.Registry, repo)

	// Scheduled timeouts and toast expiries land on this channel; the model
	// listens and routes them to the play screen as messages.
	timers := make(chan event.Event, 16)
	ctrl := session.NewController(session.Config{
		Registry: opts.Registry,
		Progress: svc,
		Emit:     func(ev event.Event) { timers <- ev },
	})

	m := AppModel{
		router: router.New(levelselect.New(opts.Registry, svc, ctrl)),
		svc:    svc,
		reg:    opts.Registry,
		timers: timers,
	}
	m.cleared = m.countCleared()
	return m
}

func (m AppModel) countCleared() int {
	records, err := m.svc.Records(context.Background())
	if err != nil {
		return 0
	}
	n := 0
	for _, rec := range records {
		if rec.Completed {
			n++
		}
	}
	return n
}

// waitTimer blocks on the timer channel and forwards the next pseudo-event.
func waitTimer(ch <-chan event.Event) tea.Cmd {
	return func() tea.Msg {
		return play.TimerFiredMsg{Event: <-ch}
	}
}

func (m AppModel) Init() tea.Cmd {
	return waitTimer(m.timers)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case play.TimerFiredMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, waitTimer(m.timers))

	case play.AttemptSettledMsg:
		m.cleared = m.countCleared()
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.cleared, m.reg.Len(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
