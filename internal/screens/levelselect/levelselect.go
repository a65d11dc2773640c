// Package levelselect shows the gauntlet: every level in unlock order with
// its lock state, attempts, and best time.
package levelselect

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/progress"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/screens/play"
	"github.com/abhisek/gauntlet/internal/session"
	"github.com/abhisek/gauntlet/internal/ui/components"
	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// SelectScreen is the entry screen listing every level.
type SelectScreen struct {
	reg  *levels.Registry
	svc  *progress.Service
	ctrl *session.Controller

	menu components.Menu
	err  error
}

var _ screen.Screen = (*SelectScreen)(nil)

// New creates the level list.
func New(reg *levels.Registry, svc *progress.Service, ctrl *session.Controller) *SelectScreen {
	s := &SelectScreen{reg: reg, svc: svc, ctrl: ctrl}
	s.rebuild()
	return s
}

// rebuild recomputes lock states and progress details for every row.
func (s *SelectScreen) rebuild() {
	ctx := context.Background()
	selected := s.menu.Selected

	items := make([]components.MenuItem, 0, s.reg.Len()+1)
	for _, spec := range s.reg.All() {
		spec := spec
		unlocked, err := s.svc.IsUnlocked(ctx, spec.ID)
		if err != nil {
			s.err = err
			continue
		}
		rec, err := s.svc.Record(ctx, spec.ID)
		if err != nil {
			s.err = err
			continue
		}

		label := fmt.Sprintf("%-24s %s", spec.Name, kindTag(spec.Kind))
		detail := ""
		switch {
		case !unlocked:
			detail = "locked"
		case rec.Completed:
			detail = fmt.Sprintf("✓ best %.1fs", float64(rec.BestDurationMs)/1000)
		case rec.Attempts > 0:
			detail = fmt.Sprintf("%d attempts", rec.Attempts)
		}
		if spec.MaxAttempts > 0 && !rec.Completed {
			detail += fmt.Sprintf("  (%d/%d tries)", rec.Attempts, spec.MaxAttempts)
		}

		items = append(items, components.MenuItem{
			Label:    label,
			Detail:   strings.TrimSpace(detail),
			Disabled: !unlocked,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.New(s.ctrl, s.svc, spec)}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	if selected < len(items) {
		// Preserve the cursor across rebuilds when the row still exists.
		if !items[selected].Disabled {
			s.menu.Selected = selected
		}
	}
}

func (s *SelectScreen) Init() tea.Cmd {
	return nil
}

// Refresh is called by the router when this screen becomes active again, so
// freshly unlocked levels appear without restarting.
func (s *SelectScreen) Refresh() tea.Cmd {
	s.rebuild()
	return nil
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(play.AttemptSettledMsg); ok {
		s.rebuild()
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SelectScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("THE WIDGET GAUNTLET"))
	sections = append(sections, theme.Subtitle.Width(width).Render("clear each interaction to unlock the next"))
	if s.err != nil {
		sections = append(sections, theme.Lost.Render("  "+s.err.Error()))
	}
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *SelectScreen) Title() string {
	return "Levels"
}

func kindTag(k levels.Kind) string {
	return theme.Hint.Render("· " + string(k))
}
