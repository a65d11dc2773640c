package validate

import (
	"testing"

	"github.com/abhisek/gauntlet/internal/levels"
)

func TestRadioGroupLastClickWins(t *testing.T) {
	m := newRadioGroup(&levels.RadioGroupGoal{
		OptionIDs: []string{"a", "b", "c"}, TargetOptionID: "c",
	})

	if out := m.Feed(click("a")); out.Status != Pending {
		t.Fatalf("wrong option = %s, want pending (no penalty)", out.Status)
	}
	if m.Selected() != "a" {
		t.Errorf("selected = %q, want %q", m.Selected(), "a")
	}
	if out := m.Feed(click("b")); out.Status != Pending {
		t.Fatalf("second wrong option = %s, want pending", out.Status)
	}
	if out := m.Feed(click("c")); out.Status != Completed {
		t.Errorf("target option = %s, want completed", out.Status)
	}
}

func TestRadioGroupIgnoresForeignTargets(t *testing.T) {
	m := newRadioGroup(&levels.RadioGroupGoal{
		OptionIDs: []string{"a", "b"}, TargetOptionID: "b",
	})
	m.Feed(click("elsewhere"))
	if m.Selected() != "" {
		t.Errorf("foreign click selected %q", m.Selected())
	}
}

func TestStepperOvershootIsCorrectable(t *testing.T) {
	m := newStepper(&levels.StepperGoal{
		IncrementID: "plus", DecrementID: "minus",
		Min: 0, Max: 10, Initial: 4, TargetValue: 2,
	})
	m.Feed(click("minus")) // 3
	if out := m.Feed(click("plus")); out.Status != Pending {
		t.Fatalf("moving away = %s, want pending", out.Status)
	}
	m.Feed(click("minus")) // 3
	if out := m.Feed(click("minus")); out.Status != Completed {
		t.Errorf("reaching target = %s, want completed (value %d)", out.Status, m.Value())
	}
}

func TestStepperClampsAtBounds(t *testing.T) {
	m := newStepper(&levels.StepperGoal{
		IncrementID: "plus", DecrementID: "minus",
		Min: 0, Max: 3, Initial: 3, TargetValue: 1,
	})
	m.Feed(click("plus")) // clamped at max
	if m.Value() != 3 {
		t.Fatalf("value = %d, want clamped at 3", m.Value())
	}

	m2 := newStepper(&levels.StepperGoal{
		IncrementID: "plus", DecrementID: "minus",
		Min: 0, Max: 3, Initial: 0, TargetValue: 2,
	})
	m2.Feed(click("minus")) // clamped at min
	if m2.Value() != 0 {
		t.Fatalf("value = %d, want clamped at 0", m2.Value())
	}
}

func TestStarRatingOverwrites(t *testing.T) {
	m := newStarRating(&levels.StarRatingGoal{
		StarIDs: []string{"s1", "s2", "s3", "s4", "s5"}, TargetIndex: 3,
	})

	m.Feed(click("s5"))
	if m.Rating() != 5 {
		t.Fatalf("rating = %d, want 5", m.Rating())
	}
	if out := m.Feed(click("s3")); out.Status != Completed {
		t.Errorf("re-click target = %s, want completed", out.Status)
	}
}

func TestTabsSwitchingResetsWithoutFailing(t *testing.T) {
	m := newTabs(&levels.TabsGoal{
		Tabs: []levels.Pane{
			{ID: "t1", ChildIDs: []string{"c1"}},
			{ID: "t2", ChildIDs: []string{"c2"}},
		},
		TargetTabID: "t2", TargetChildID: "c2",
	})

	m.Feed(click("t2"))
	if m.Phase() != PhaseTabSelected {
		t.Fatalf("phase = %v, want PhaseTabSelected", m.Phase())
	}

	// Switching away resets the working phase but never fails.
	if out := m.Feed(click("t1")); out.Status != Pending {
		t.Fatalf("switch away = %s, want pending", out.Status)
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("phase after switch = %v, want PhaseIdle", m.Phase())
	}

	// The target child is unreachable while its tab is hidden.
	if out := m.Feed(click("c2")); out.Status != Pending {
		t.Fatalf("hidden child click = %s, want pending", out.Status)
	}

	m.Feed(click("t2"))
	if out := m.Feed(click("c2")); out.Status != Completed {
		t.Errorf("child in target tab = %s, want completed", out.Status)
	}
}

func TestAccordionToggleCloses(t *testing.T) {
	m := newAccordion(&levels.AccordionGoal{
		Sections: []levels.Pane{
			{ID: "s1", ChildIDs: []string{"c1"}},
			{ID: "s2", ChildIDs: []string{"c2"}},
		},
		TargetSectionID: "s2", TargetChildID: "c2",
	})

	m.Feed(click("s2"))
	m.Feed(click("s2")) // toggle closed
	if m.Active() != "" {
		t.Fatalf("active = %q, want closed", m.Active())
	}
	if out := m.Feed(click("c2")); out.Status != Pending {
		t.Fatalf("child of closed section = %s, want pending", out.Status)
	}

	// Wrong section only fails to progress.
	m.Feed(click("s1"))
	if out := m.Feed(click("c1")); out.Status != Pending {
		t.Fatalf("wrong section child = %s, want pending", out.Status)
	}

	m.Feed(click("s2"))
	if out := m.Feed(click("c2")); out.Status != Completed {
		t.Errorf("target child = %s, want completed", out.Status)
	}
}

func TestModalDismissIsNonFailingByDefault(t *testing.T) {
	m := newModal(&levels.ModalGoal{
		TriggerID: "open", ConfirmID: "yes", DismissIDs: []string{"no", "x"},
	})

	// Confirm before opening is spurious.
	if out := m.Feed(click("yes")); out.Status != Pending {
		t.Fatalf("confirm while closed = %s, want pending", out.Status)
	}

	m.Feed(click("open"))
	if !m.Open() {
		t.Fatal("trigger did not open the modal")
	}
	if out := m.Feed(click("no")); out.Status != Pending {
		t.Fatalf("dismiss = %s, want pending (retryable)", out.Status)
	}
	if m.Open() {
		t.Fatal("dismiss should close the modal")
	}

	m.Feed(click("open"))
	if out := m.Feed(click("yes")); out.Status != Completed {
		t.Errorf("confirm = %s, want completed", out.Status)
	}
}

func TestModalFailOnDismiss(t *testing.T) {
	m := newModal(&levels.ModalGoal{
		TriggerID: "open", ConfirmID: "yes", DismissIDs: []string{"no"},
		FailOnDismiss: true,
	})
	m.Feed(click("open"))
	if out := m.Feed(click("no")); out.Status != Failed {
		t.Errorf("fatal dismiss = %s, want failed", out.Status)
	}
}

func TestAutocompleteFlow(t *testing.T) {
	goal := &levels.AutocompleteGoal{
		InputID: "q", MinChars: 2,
		Suggestions: []levels.Suggestion{
			{ID: "ts", Label: "TypeScript"},
			{ID: "typst", Label: "Typst"},
			{ID: "tcl", Label: "Tcl"},
		},
		TargetSuggestionID: "ts",
	}

	m := newAutocomplete(goal)
	if m.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want PhaseIdle", m.Phase())
	}

	m.Feed(key("q", "T"))
	if m.Phase() != PhaseTyping {
		t.Fatalf("below min chars phase = %v, want PhaseTyping", m.Phase())
	}

	m.Feed(key("q", "Ty"))
	if m.Phase() != PhaseSuggestions {
		t.Fatalf("phase = %v, want PhaseSuggestions (visible %v)", m.Phase(), m.Visible())
	}

	// Typing past every match clears the suggestions.
	m.Feed(key("q", "Tyz"))
	if m.Phase() != PhaseTyping {
		t.Fatalf("no-match phase = %v, want PhaseTyping", m.Phase())
	}

	// Clicking a suggestion that is not visible is ignored.
	if out := m.Feed(click("ts")); out.Status != Pending {
		t.Fatalf("hidden suggestion click = %s, want pending", out.Status)
	}

	m.Feed(key("q", "Ty"))
	if out := m.Feed(click("ts")); out.Status != Completed {
		t.Errorf("visible target click = %s, want completed", out.Status)
	}
}

func TestAutocompleteKeyboardConfirm(t *testing.T) {
	goal := &levels.AutocompleteGoal{
		InputID: "q", MinChars: 2,
		Suggestions: []levels.Suggestion{
			{ID: "typst", Label: "Typst"},
			{ID: "ts", Label: "TypeScript"},
		},
		TargetSuggestionID: "ts",
	}

	m := newAutocomplete(goal)
	m.Feed(key("q", "Ty"))
	m.Feed(key("q", KeyDown)) // highlight moves to TypeScript
	out := m.Feed(key("q", KeyEnter))
	if out.Status != Completed {
		t.Errorf("keyboard confirm = %s, want completed", out.Status)
	}
}

func TestAutocompleteWrongPickFillsInput(t *testing.T) {
	m := newAutocomplete(&levels.AutocompleteGoal{
		InputID: "q", MinChars: 2,
		Suggestions: []levels.Suggestion{
			{ID: "ts", Label: "TypeScript"},
			{ID: "typst", Label: "Typst"},
		},
		TargetSuggestionID: "ts",
	})
	m.Feed(key("q", "Ty"))
	if out := m.Feed(click("typst")); out.Status != Pending {
		t.Fatalf("wrong pick = %s, want pending", out.Status)
	}
	if m.Text() != "Typst" {
		t.Errorf("text = %q, want filled with %q", m.Text(), "Typst")
	}
}

func TestTagsOverSelectionIsCorrectable(t *testing.T) {
	m := newTags(&levels.TagsGoal{
		TagIDs:       []string{"go", "rust", "java"},
		TargetTagIDs: []string{"go", "rust"},
	})

	m.Feed(click("go"))
	m.Feed(click("java"))
	if out := m.Feed(click("rust")); out.Status != Pending {
		t.Fatalf("over-selected set = %s, want pending", out.Status)
	}

	// Removing the extra chip completes.
	if out := m.Feed(click("java")); out.Status != Completed {
		t.Errorf("after removal = %s, want completed", out.Status)
	}
}

func TestTagsInitialSelection(t *testing.T) {
	m := newTags(&levels.TagsGoal{
		TagIDs:       []string{"go", "rust", "python"},
		TargetTagIDs: []string{"go"},
		InitialIDs:   []string{"python"},
	})
	if !m.Selected("python") {
		t.Fatal("initial selection missing")
	}
	m.Feed(click("go"))
	if out := m.Feed(click("python")); out.Status != Completed {
		t.Errorf("after deselecting initial = %s, want completed", out.Status)
	}
}
