// Package levels holds the immutable level definitions: which widget each
// level exercises, the goal the player must reach, and the registry the
// session controller reads them from.
package levels

import (
	"errors"
	"fmt"
)

// Kind is the fixed category of widget a level exercises.
type Kind string

const (
	KindSlider          Kind = "slider"
	KindRadioGroup      Kind = "radio-group"
	KindStepper         Kind = "stepper"
	KindStarRating      Kind = "star-rating"
	KindTabs            Kind = "tabs"
	KindAccordion       Kind = "accordion"
	KindModal           Kind = "modal"
	KindContextMenu     Kind = "context-menu"
	KindAutocomplete    Kind = "autocomplete"
	KindSortableList    Kind = "sortable-list"
	KindMultiSelectTags Kind = "multi-select-tags"
	KindToast           Kind = "toast"
)

// AllKinds returns every widget kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindSlider, KindRadioGroup, KindStepper, KindStarRating,
		KindTabs, KindAccordion, KindModal, KindContextMenu,
		KindAutocomplete, KindSortableList, KindMultiSelectTags, KindToast,
	}
}

// ErrNotFound is returned for unknown level IDs.
var ErrNotFound = errors.New("level not found")

// ErrConfig is returned when a level spec is malformed. It is fatal at load
// time: no partial registry is ever constructed.
var ErrConfig = errors.New("invalid level config")

// Spec is one level definition. Specs are immutable once loaded.
type Spec struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Kind   Kind   `json:"widget_kind"`
	Goal   Goal   `json:"goal"`

	// TimeoutMs bounds one attempt; 0 means no timeout.
	TimeoutMs int64 `json:"timeout_ms,omitempty"`

	// MaxAttempts bounds retries; 0 means unlimited.
	MaxAttempts int `json:"max_attempts,omitempty"`
}

// Goal carries the kind-specific goal parameters. Exactly the field matching
// Spec.Kind must be set; Validate enforces this.
type Goal struct {
	Slider       *SliderGoal       `json:"slider,omitempty"`
	RadioGroup   *RadioGroupGoal   `json:"radio_group,omitempty"`
	Stepper      *StepperGoal      `json:"stepper,omitempty"`
	StarRating   *StarRatingGoal   `json:"star_rating,omitempty"`
	Tabs         *TabsGoal         `json:"tabs,omitempty"`
	Accordion    *AccordionGoal    `json:"accordion,omitempty"`
	Modal        *ModalGoal        `json:"modal,omitempty"`
	ContextMenu  *ContextMenuGoal  `json:"context_menu,omitempty"`
	Autocomplete *AutocompleteGoal `json:"autocomplete,omitempty"`
	Sortable     *SortableGoal     `json:"sortable_list,omitempty"`
	Tags         *TagsGoal         `json:"multi_select_tags,omitempty"`
	Toast        *ToastGoal        `json:"toast,omitempty"`
}

// SliderGoal succeeds when the handle settles within Tolerance of TargetValue.
type SliderGoal struct {
	TrackID     string  `json:"track_id"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	TargetValue float64 `json:"target_value"`
	Tolerance   float64 `json:"tolerance"`
}

// RadioGroupGoal succeeds when the option with TargetOptionID is selected.
type RadioGroupGoal struct {
	OptionIDs      []string `json:"option_ids"`
	TargetOptionID string   `json:"target_option_id"`
}

// StepperGoal succeeds when the clamped running value equals TargetValue.
type StepperGoal struct {
	IncrementID string `json:"increment_id"`
	DecrementID string `json:"decrement_id"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Initial     int    `json:"initial"`
	TargetValue int    `json:"target_value"`
}

// StarRatingGoal succeeds when the star at TargetIndex (1-based) is the
// current rating. StarIDs are ordered left to right.
type StarRatingGoal struct {
	StarIDs     []string `json:"star_ids"`
	TargetIndex int      `json:"target_index"`
}

// Pane is one tab panel or accordion section with its interactive children.
type Pane struct {
	ID       string   `json:"id"`
	ChildIDs []string `json:"child_ids"`
}

// TabsGoal succeeds when TargetChildID is activated while the tab with
// TargetTabID is selected.
type TabsGoal struct {
	Tabs          []Pane `json:"tabs"`
	TargetTabID   string `json:"target_tab_id"`
	TargetChildID string `json:"target_child_id"`
}

// AccordionGoal succeeds when TargetChildID is activated while the section
// with TargetSectionID is open. Opening a section closes the previous one.
type AccordionGoal struct {
	Sections        []Pane `json:"sections"`
	TargetSectionID string `json:"target_section_id"`
	TargetChildID   string `json:"target_child_id"`
}

// ModalGoal succeeds on the confirm action while the modal is open. A click
// on any DismissIDs entry closes the modal; it fails the level only when
// FailOnDismiss is set.
type ModalGoal struct {
	TriggerID     string   `json:"trigger_id"`
	ConfirmID     string   `json:"confirm_id"`
	DismissIDs    []string `json:"dismiss_ids"`
	FailOnDismiss bool     `json:"fail_on_dismiss,omitempty"`
}

// ContextMenuGoal succeeds when TargetOptionID is selected from the menu
// opened by a right-click on SurfaceID.
type ContextMenuGoal struct {
	SurfaceID      string   `json:"surface_id"`
	OptionIDs      []string `json:"option_ids"`
	TargetOptionID string   `json:"target_option_id"`
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AutocompleteGoal succeeds when the suggestion with TargetSuggestionID is
// selected while visible. Suggestions show once the typed text is at least
// MinChars long and matches at least one label.
type AutocompleteGoal struct {
	InputID            string       `json:"input_id"`
	MinChars           int          `json:"min_chars"`
	Suggestions        []Suggestion `json:"suggestions"`
	TargetSuggestionID string       `json:"target_suggestion_id"`
}

// SortableGoal succeeds when the tracked permutation equals TargetOrder
// exactly. No partial credit.
type SortableGoal struct {
	ItemIDs     []string `json:"item_ids"`
	TargetOrder []string `json:"target_order"`
}

// TagsGoal succeeds when the selected set equals TargetTagIDs, order
// irrelevant. Over-selection is correctable by removal.
type TagsGoal struct {
	TagIDs       []string `json:"tag_ids"`
	TargetTagIDs []string `json:"target_tag_ids"`
	InitialIDs   []string `json:"initial_ids,omitempty"`
}

// ToastSpec is one notification in a toast level. ExpiresMs of 0 means the
// toast never expires on its own.
type ToastSpec struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	ExpiresMs int64  `json:"expires_ms,omitempty"`
}

// ToastGoal succeeds when the toast with TargetToastID is dismissed before
// its expiry fires; the expiry firing first fails the level.
type ToastGoal struct {
	Toasts        []ToastSpec `json:"toasts"`
	TargetToastID string      `json:"target_toast_id"`
}

// Validate checks that the spec is well formed and its goal parameters match
// the shape required by its widget kind. All violations wrap ErrConfig.
func (s Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing level id", ErrConfig)
	}
	if s.TimeoutMs < 0 {
		return s.bad("timeout_ms must be >= 0")
	}
	if s.MaxAttempts < 0 {
		return s.bad("max_attempts must be >= 0")
	}

	set := s.Goal.setKinds()
	if len(set) != 1 || set[0] != s.Kind {
		return s.bad(fmt.Sprintf("goal parameters must be set for exactly the %q kind, got %v", s.Kind, set))
	}

	switch s.Kind {
	case KindSlider:
		return s.validateSlider()
	case KindRadioGroup:
		return s.validateRadioGroup()
	case KindStepper:
		return s.validateStepper()
	case KindStarRating:
		return s.validateStarRating()
	case KindTabs:
		return s.validateTabs()
	case KindAccordion:
		return s.validateAccordion()
	case KindModal:
		return s.validateModal()
	case KindContextMenu:
		return s.validateContextMenu()
	case KindAutocomplete:
		return s.validateAutocomplete()
	case KindSortableList:
		return s.validateSortable()
	case KindMultiSelectTags:
		return s.validateTags()
	case KindToast:
		return s.validateToast()
	}
	return s.bad(fmt.Sprintf("unknown widget kind %q", s.Kind))
}

func (s Spec) bad(msg string) error {
	return fmt.Errorf("%w: level %q: %s", ErrConfig, s.ID, msg)
}

// setKinds reports which goal variants are populated.
func (g Goal) setKinds() []Kind {
	var out []Kind
	if g.Slider != nil {
		out = append(out, KindSlider)
	}
	if g.RadioGroup != nil {
		out = append(out, KindRadioGroup)
	}
	if g.Stepper != nil {
		out = append(out, KindStepper)
	}
	if g.StarRating != nil {
		out = append(out, KindStarRating)
	}
	if g.Tabs != nil {
		out = append(out, KindTabs)
	}
	if g.Accordion != nil {
		out = append(out, KindAccordion)
	}
	if g.Modal != nil {
		out = append(out, KindModal)
	}
	if g.ContextMenu != nil {
		out = append(out, KindContextMenu)
	}
	if g.Autocomplete != nil {
		out = append(out, KindAutocomplete)
	}
	if g.Sortable != nil {
		out = append(out, KindSortableList)
	}
	if g.Tags != nil {
		out = append(out, KindMultiSelectTags)
	}
	if g.Toast != nil {
		out = append(out, KindToast)
	}
	return out
}

func (s Spec) validateSlider() error {
	g := s.Goal.Slider
	if g.TrackID == "" {
		return s.bad("slider track_id is required")
	}
	if g.Tolerance <= 0 {
		return s.bad("slider tolerance must be > 0")
	}
	if g.Min >= g.Max {
		return s.bad("slider min must be < max")
	}
	if g.TargetValue < g.Min || g.TargetValue > g.Max {
		return s.bad("slider target_value must lie within [min, max]")
	}
	return nil
}

func (s Spec) validateRadioGroup() error {
	g := s.Goal.RadioGroup
	if len(g.OptionIDs) < 2 {
		return s.bad("radio group needs at least 2 options")
	}
	if !contains(g.OptionIDs, g.TargetOptionID) {
		return s.bad("radio group target_option_id must be one of option_ids")
	}
	return nil
}

func (s Spec) validateStepper() error {
	g := s.Goal.Stepper
	if g.IncrementID == "" || g.DecrementID == "" {
		return s.bad("stepper increment_id and decrement_id are required")
	}
	if g.Min >= g.Max {
		return s.bad("stepper min must be < max")
	}
	if g.Initial < g.Min || g.Initial > g.Max {
		return s.bad("stepper initial must lie within [min, max]")
	}
	if g.TargetValue < g.Min || g.TargetValue > g.Max {
		return s.bad("stepper target_value must lie within [min, max]")
	}
	return nil
}

func (s Spec) validateStarRating() error {
	g := s.Goal.StarRating
	if len(g.StarIDs) < 2 {
		return s.bad("star rating needs at least 2 stars")
	}
	if g.TargetIndex < 1 || g.TargetIndex > len(g.StarIDs) {
		return s.bad("star rating target_index out of range")
	}
	return nil
}

func (s Spec) validateTabs() error {
	g := s.Goal.Tabs
	target := findPane(g.Tabs, g.TargetTabID)
	if target == nil {
		return s.bad("tabs target_tab_id must name one of the tabs")
	}
	if !contains(target.ChildIDs, g.TargetChildID) {
		return s.bad("tabs target_child_id must be a child of the target tab")
	}
	return nil
}

func (s Spec) validateAccordion() error {
	g := s.Goal.Accordion
	target := findPane(g.Sections, g.TargetSectionID)
	if target == nil {
		return s.bad("accordion target_section_id must name one of the sections")
	}
	if !contains(target.ChildIDs, g.TargetChildID) {
		return s.bad("accordion target_child_id must be a child of the target section")
	}
	return nil
}

func (s Spec) validateModal() error {
	g := s.Goal.Modal
	if g.TriggerID == "" || g.ConfirmID == "" {
		return s.bad("modal trigger_id and confirm_id are required")
	}
	if contains(g.DismissIDs, g.ConfirmID) {
		return s.bad("modal confirm_id cannot also be a dismiss action")
	}
	return nil
}

func (s Spec) validateContextMenu() error {
	g := s.Goal.ContextMenu
	if g.SurfaceID == "" {
		return s.bad("context menu surface_id is required")
	}
	if len(g.OptionIDs) == 0 {
		return s.bad("context menu needs at least 1 option")
	}
	if !contains(g.OptionIDs, g.TargetOptionID) {
		return s.bad("context menu target_option_id must be one of option_ids")
	}
	return nil
}

func (s Spec) validateAutocomplete() error {
	g := s.Goal.Autocomplete
	if g.InputID == "" {
		return s.bad("autocomplete input_id is required")
	}
	if g.MinChars < 1 {
		return s.bad("autocomplete min_chars must be >= 1")
	}
	if len(g.Suggestions) == 0 {
		return s.bad("autocomplete needs at least 1 suggestion")
	}
	found := false
	for _, sug := range g.Suggestions {
		if sug.ID == "" || sug.Label == "" {
			return s.bad("autocomplete suggestions need id and label")
		}
		if sug.ID == g.TargetSuggestionID {
			found = true
		}
	}
	if !found {
		return s.bad("autocomplete target_suggestion_id must be one of the suggestions")
	}
	return nil
}

func (s Spec) validateSortable() error {
	g := s.Goal.Sortable
	if len(g.ItemIDs) < 2 {
		return s.bad("sortable list needs at least 2 items")
	}
	if !samePermutation(g.ItemIDs, g.TargetOrder) {
		return s.bad("sortable target_order must be a permutation of item_ids")
	}
	return nil
}

func (s Spec) validateTags() error {
	g := s.Goal.Tags
	if len(g.TagIDs) < 2 {
		return s.bad("multi-select needs at least 2 tags")
	}
	if len(g.TargetTagIDs) == 0 {
		return s.bad("multi-select target_tag_ids must be non-empty")
	}
	for _, id := range g.TargetTagIDs {
		if !contains(g.TagIDs, id) {
			return s.bad(fmt.Sprintf("multi-select target tag %q is not in tag_ids", id))
		}
	}
	for _, id := range g.InitialIDs {
		if !contains(g.TagIDs, id) {
			return s.bad(fmt.Sprintf("multi-select initial tag %q is not in tag_ids", id))
		}
	}
	return nil
}

func (s Spec) validateToast() error {
	g := s.Goal.Toast
	if len(g.Toasts) == 0 {
		return s.bad("toast level needs at least 1 toast")
	}
	seen := map[string]bool{}
	found := false
	for _, t := range g.Toasts {
		if t.ID == "" {
			return s.bad("every toast needs an id")
		}
		if seen[t.ID] {
			return s.bad(fmt.Sprintf("duplicate toast id %q", t.ID))
		}
		seen[t.ID] = true
		if t.ExpiresMs < 0 {
			return s.bad("toast expires_ms must be >= 0")
		}
		if t.ID == g.TargetToastID {
			found = true
		}
	}
	if !found {
		return s.bad("toast target_toast_id must name one of the toasts")
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func findPane(panes []Pane, id string) *Pane {
	for i := range panes {
		if panes[i].ID == id {
			return &panes[i]
		}
	}
	return nil
}

// samePermutation reports whether b is a reordering of a.
func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
