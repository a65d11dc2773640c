package play

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/ui/layout"
	"github.com/abhisek/gauntlet/internal/validate"
)

// voidTarget is where "clicks on nothing" land: closing an open context menu
// or dropping a grabbed item outside the list.
const voidTarget = "void"

// rawsForKey maps one key press to raw host inputs for the active widget.
// handled is false when the key should fall through to the text input.
func (p *PlayScreen) rawsForKey(msg tea.KeyMsg) (raws []event.RawInput, handled bool) {
	key := msg.String()

	// Number keys click the numbered element, except while an autocomplete
	// level is typing.
	if p.spec.Kind != levels.KindAutocomplete {
		if idx, ok := digitIndex(key); ok {
			return p.clickIndex(idx), true
		}
	}

	switch p.spec.Kind {
	case levels.KindSlider:
		return p.sliderKey(key)

	case levels.KindContextMenu:
		g := p.spec.Goal.ContextMenu
		switch key {
		case "m":
			// The context-menu gesture: a secondary-button press on the
			// surface.
			return []event.RawInput{{
				Kind: event.RawClick, Button: event.ButtonSecondary, Target: g.SurfaceID,
			}}, true
		case "o":
			return []event.RawInput{{Kind: event.RawClick, Target: voidTarget}}, true
		}

	case levels.KindAutocomplete:
		g := p.spec.Goal.Autocomplete
		switch key {
		case "down":
			return []event.RawInput{{Kind: event.RawKey, Target: g.InputID, Text: validate.KeyDown}}, true
		case "up":
			return []event.RawInput{{Kind: event.RawKey, Target: g.InputID, Text: validate.KeyUp}}, true
		case "enter":
			return []event.RawInput{{Kind: event.RawKey, Target: g.InputID, Text: validate.KeyEnter}}, true
		}

	case levels.KindSortableList:
		if key == "backspace" {
			// Drop the grabbed item outside the list.
			return []event.RawInput{{Kind: event.RawPointerUp, Target: voidTarget}}, true
		}
	}

	return nil, false
}

// sliderKey drives the drag gesture: space grabs and releases, arrows move
// the handle while it is held.
func (p *PlayScreen) sliderKey(key string) ([]event.RawInput, bool) {
	g := p.spec.Goal.Slider
	m, _ := p.machine().(*validate.Slider)
	dragging := m != nil && m.Phase() == validate.PhaseDragging

	fine := sliderStep(g)
	switch key {
	case "space", " ":
		if dragging {
			return []event.RawInput{{Kind: event.RawPointerUp, Target: g.TrackID, Value: p.slider}}, true
		}
		return []event.RawInput{{Kind: event.RawPointerDown, Target: g.TrackID, Value: p.slider}}, true

	case "left", "right", "shift+left", "shift+right":
		if !dragging {
			return nil, true
		}
		step := fine
		if key == "shift+left" || key == "shift+right" {
			step = fine * 5
		}
		if key == "left" || key == "shift+left" {
			step = -step
		}
		p.slider += step
		if p.slider < g.Min {
			p.slider = g.Min
		}
		if p.slider > g.Max {
			p.slider = g.Max
		}
		return []event.RawInput{{Kind: event.RawPointerMove, Target: g.TrackID, Value: p.slider}}, true
	}
	return nil, false
}

// sliderStep is one arrow press: 1 unit on ranges of at least 100, a
// hundredth of the range on narrower ones.
func sliderStep(g *levels.SliderGoal) float64 {
	if r := g.Max - g.Min; r < 100 {
		return r / 100
	}
	return 1
}

// clickIndex clicks the element the given digit points at. For sortable
// lists the first digit grabs and the second drops.
func (p *PlayScreen) clickIndex(idx int) []event.RawInput {
	targets := p.clickTargets()
	if idx < 0 || idx >= len(targets) {
		return nil
	}
	id := targets[idx]

	if p.spec.Kind == levels.KindSortableList {
		if m, ok := p.machine().(*validate.Sortable); ok && m.Grabbed() != "" {
			return []event.RawInput{{Kind: event.RawPointerUp, Target: id}}
		}
		return []event.RawInput{{Kind: event.RawPointerDown, Target: id}}
	}
	return []event.RawInput{{Kind: event.RawClick, Target: id}}
}

// clickTargets lists the clickable element IDs in display order. The view
// renders the same order, so the numbering on screen matches the digits.
func (p *PlayScreen) clickTargets() []string {
	switch p.spec.Kind {
	case levels.KindRadioGroup:
		return p.spec.Goal.RadioGroup.OptionIDs
	case levels.KindStepper:
		g := p.spec.Goal.Stepper
		return []string{g.IncrementID, g.DecrementID}
	case levels.KindStarRating:
		return p.spec.Goal.StarRating.StarIDs
	case levels.KindTabs:
		g := p.spec.Goal.Tabs
		out := paneIDs(g.Tabs)
		if m, ok := p.machine().(*validate.Tabs); ok {
			out = append(out, paneChildren(g.Tabs, m.Active())...)
		}
		return out
	case levels.KindAccordion:
		g := p.spec.Goal.Accordion
		out := paneIDs(g.Sections)
		if m, ok := p.machine().(*validate.Accordion); ok {
			out = append(out, paneChildren(g.Sections, m.Active())...)
		}
		return out
	case levels.KindModal:
		g := p.spec.Goal.Modal
		if m, ok := p.machine().(*validate.Modal); ok && m.Open() {
			return append([]string{g.ConfirmID}, g.DismissIDs...)
		}
		return []string{g.TriggerID}
	case levels.KindContextMenu:
		return p.spec.Goal.ContextMenu.OptionIDs
	case levels.KindSortableList:
		if m, ok := p.machine().(*validate.Sortable); ok {
			return m.Order()
		}
		return p.spec.Goal.Sortable.ItemIDs
	case levels.KindMultiSelectTags:
		return p.spec.Goal.Tags.TagIDs
	case levels.KindToast:
		g := p.spec.Goal.Toast
		out := make([]string, 0, len(g.Toasts))
		for _, t := range g.Toasts {
			out = append(out, t.ID)
		}
		return out
	}
	return nil
}

func paneIDs(panes []levels.Pane) []string {
	out := make([]string, 0, len(panes))
	for _, pn := range panes {
		out = append(out, pn.ID)
	}
	return out
}

func paneChildren(panes []levels.Pane, active string) []string {
	for _, pn := range panes {
		if pn.ID == active {
			return pn.ChildIDs
		}
	}
	return nil
}

func digitIndex(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1'), true
	}
	return 0, false
}

// widgetHints returns the footer key hints for each widget family.
func widgetHints(kind levels.Kind) []layout.KeyHint {
	switch kind {
	case levels.KindSlider:
		return []layout.KeyHint{
			{Key: "Space", Description: "Grab/Release"},
			{Key: "←→", Description: "Move"},
			{Key: "Shift+←→", Description: "Move fast"},
		}
	case levels.KindContextMenu:
		return []layout.KeyHint{
			{Key: "M", Description: "Right-click file"},
			{Key: "1-9", Description: "Pick option"},
			{Key: "O", Description: "Click elsewhere"},
		}
	case levels.KindAutocomplete:
		return []layout.KeyHint{
			{Key: "Type", Description: "Search"},
			{Key: "↑↓", Description: "Highlight"},
			{Key: "Enter", Description: "Select"},
		}
	case levels.KindSortableList:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Grab, then drop"},
			{Key: "Backspace", Description: "Drop outside"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Click element"},
		}
	}
}
