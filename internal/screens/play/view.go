package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/session"
	"github.com/abhisek/gauntlet/internal/ui/theme"
	"github.com/abhisek/gauntlet/internal/validate"
)

func (p *PlayScreen) View(width, height int) string {
	if p.err != nil {
		return theme.Lost.Render("  " + p.err.Error())
	}
	if p.machine() == nil {
		return ""
	}

	var sections []string
	sections = append(sections, theme.Card.Render(theme.Body.Render(p.spec.Prompt)))
	sections = append(sections, p.widgetView())
	sections = append(sections, p.statusLine())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// statusLine shows the clock while playing and the outcome afterwards.
func (p *PlayScreen) statusLine() string {
	switch p.ctrl.Phase() {
	case session.Completed:
		return theme.Won.Render(fmt.Sprintf("✓ Cleared in %.1fs", p.ctrl.Duration().Seconds()))
	case session.Failed:
		reason := p.ctrl.Outcome().Reason
		if reason == "" {
			reason = "failed"
		}
		return theme.Lost.Render("✗ " + reason)
	case session.Abandoned:
		return theme.Hint.Render("attempt abandoned")
	}

	elapsed := p.ctrl.Duration().Seconds()
	if p.spec.TimeoutMs > 0 {
		remaining := float64(p.spec.TimeoutMs)/1000 - elapsed
		if remaining < 0 {
			remaining = 0
		}
		return theme.Hint.Render(fmt.Sprintf("%.0fs left", remaining))
	}
	return theme.Hint.Render(fmt.Sprintf("%.0fs", elapsed))
}

// widgetView renders the active widget from the machine's current state.
func (p *PlayScreen) widgetView() string {
	switch p.spec.Kind {
	case levels.KindSlider:
		return p.sliderView()
	case levels.KindStepper:
		return p.stepperView()
	case levels.KindStarRating:
		return p.starsView()
	case levels.KindTabs, levels.KindAccordion:
		return p.panesView()
	case levels.KindModal:
		return p.modalView()
	case levels.KindContextMenu:
		return p.menuView()
	case levels.KindAutocomplete:
		return p.autocompleteView()
	case levels.KindToast:
		return p.toastView()
	default:
		// Radio groups, sortable lists, and tag sets are flat numbered rows.
		return p.numberedRows()
	}
}

// numberedRows renders the click targets with their digit badges and a
// per-kind marker for the selected state.
func (p *PlayScreen) numberedRows() string {
	var b strings.Builder
	for i, id := range p.clickTargets() {
		marker := "  "
		switch m := p.machine().(type) {
		case *validate.RadioGroup:
			if m.Selected() == id {
				marker = theme.Selected.Render("● ")
			} else {
				marker = theme.InactivePane.Render("○ ")
			}
		case *validate.Tags:
			if m.Selected(id) {
				marker = theme.Selected.Render("▣ ")
			} else {
				marker = theme.InactivePane.Render("□ ")
			}
		case *validate.Sortable:
			if m.Grabbed() == id {
				marker = theme.Selected.Render("⠿ ")
			} else {
				marker = theme.InactivePane.Render("⠿ ")
			}
		}
		fmt.Fprintf(&b, " %s %s%s\n", badge(i), marker, theme.Body.Render(id))
	}
	return b.String()
}

func (p *PlayScreen) sliderView() string {
	m := p.machine().(*validate.Slider)
	g := m.Goal()

	const trackWidth = 40
	pos := 0
	if g.Max > g.Min {
		pos = int((m.Value() - g.Min) / (g.Max - g.Min) * float64(trackWidth-1))
	}

	var b strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == pos {
			if m.Phase() == validate.PhaseDragging {
				b.WriteString(theme.Selected.Render("◉"))
			} else {
				b.WriteString(theme.Body.Render("●"))
			}
		} else {
			b.WriteString(theme.TrackEmpty.Render("─"))
		}
	}
	return fmt.Sprintf("%s\n%s", b.String(),
		theme.Hint.Render(fmt.Sprintf("value %.0f  (target %.0f ± %.0f)", m.Value(), g.TargetValue, g.Tolerance)))
}

func (p *PlayScreen) stepperView() string {
	m := p.machine().(*validate.Stepper)
	g := m.Goal()
	return fmt.Sprintf(" %s %s   %s   %s %s\n%s",
		badge(0), theme.Body.Render("[+]"),
		theme.Selected.Render(fmt.Sprintf("%d", m.Value())),
		badge(1), theme.Body.Render("[-]"),
		theme.Hint.Render(fmt.Sprintf("target %d", g.TargetValue)))
}

func (p *PlayScreen) starsView() string {
	m := p.machine().(*validate.StarRating)
	var b strings.Builder
	for i := range m.Goal().StarIDs {
		b.WriteString(" " + badge(i) + " ")
		if i < m.Rating() {
			b.WriteString(theme.Selected.Render("★"))
		} else {
			b.WriteString(theme.InactivePane.Render("☆"))
		}
	}
	return b.String()
}

func (p *PlayScreen) panesView() string {
	var (
		panes  []levels.Pane
		active string
	)
	switch m := p.machine().(type) {
	case *validate.Tabs:
		panes, active = m.Goal().Tabs, m.Active()
	case *validate.Accordion:
		panes, active = m.Goal().Sections, m.Active()
	}

	var b strings.Builder
	childIdx := len(panes)
	for i, pane := range panes {
		style := theme.InactivePane
		if pane.ID == active {
			style = theme.ActivePane
		}
		fmt.Fprintf(&b, " %s %s\n", badge(i), style.Render(pane.ID))
		if pane.ID == active {
			for _, child := range pane.ChildIDs {
				fmt.Fprintf(&b, "      %s %s\n", badge(childIdx), theme.Body.Render(child))
				childIdx++
			}
		}
	}
	return b.String()
}

func (p *PlayScreen) modalView() string {
	m := p.machine().(*validate.Modal)
	g := m.Goal()

	if !m.Open() {
		return fmt.Sprintf(" %s %s", badge(0), theme.Body.Render("["+g.TriggerID+"]"))
	}

	var b strings.Builder
	b.WriteString(theme.Card.Render("Are you sure?") + "\n")
	fmt.Fprintf(&b, " %s %s", badge(0), theme.Won.Render("["+g.ConfirmID+"]"))
	for i, id := range g.DismissIDs {
		fmt.Fprintf(&b, "   %s %s", badge(i+1), theme.Body.Render("["+id+"]"))
	}
	return b.String()
}

func (p *PlayScreen) menuView() string {
	m := p.machine().(*validate.ContextMenu)
	g := m.Goal()

	var b strings.Builder
	fmt.Fprintf(&b, " %s\n", theme.Body.Render("▤ "+g.SurfaceID))
	if m.Open() {
		for i, id := range g.OptionIDs {
			fmt.Fprintf(&b, "    %s %s\n", badge(i), theme.Body.Render(id))
		}
	} else {
		b.WriteString(theme.Hint.Render("   press M to right-click"))
	}
	return b.String()
}

func (p *PlayScreen) autocompleteView() string {
	m := p.machine().(*validate.Autocomplete)

	var b strings.Builder
	b.WriteString(p.input.View() + "\n")
	for i, sug := range m.Visible() {
		if i == m.Highlight() {
			b.WriteString(theme.Selected.Render(" ▸ "+sug.Label) + "\n")
		} else {
			b.WriteString(theme.Body.Render("   "+sug.Label) + "\n")
		}
	}
	return b.String()
}

func (p *PlayScreen) toastView() string {
	m := p.machine().(*validate.Toast)
	g := m.Goal()

	var b strings.Builder
	for i, t := range g.Toasts {
		if !m.Visible(t.ID) {
			continue
		}
		msg := t.Message
		if msg == "" {
			msg = t.ID
		}
		fmt.Fprintf(&b, " %s %s\n", badge(i), theme.Card.Render(msg))
	}
	if b.Len() == 0 {
		return theme.Hint.Render("no notifications")
	}
	return b.String()
}

func badge(i int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("[%d]", i+1))
}
