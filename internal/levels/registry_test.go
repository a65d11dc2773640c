package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sliderSpec(id string) Spec {
	return Spec{
		ID:   id,
		Name: "Volume",
		Kind: KindSlider,
		Goal: Goal{Slider: &SliderGoal{
			TrackID: "vol", Min: 0, Max: 100, TargetValue: 60, Tolerance: 2,
		}},
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	_, err := Load([]Spec{sliderSpec("a"), sliderSpec("a")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadRejectsInvalidSpecWithoutPartialRegistry(t *testing.T) {
	bad := sliderSpec("b")
	bad.Goal.Slider.Tolerance = 0

	reg, err := Load([]Spec{sliderSpec("a"), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, reg)
}

func TestRegistryGet(t *testing.T) {
	reg, err := Load([]Spec{sliderSpec("a"), sliderSpec("b")})
	require.NoError(t, err)

	got, err := reg.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	_, err = reg.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, reg.Has("nope"))
}

func TestRegistryPredecessorChain(t *testing.T) {
	reg, err := Load([]Spec{sliderSpec("a"), sliderSpec("b"), sliderSpec("c")})
	require.NoError(t, err)

	_, ok := reg.Predecessor("a")
	assert.False(t, ok, "first level has no predecessor")

	prev, ok := reg.Predecessor("c")
	require.True(t, ok)
	assert.Equal(t, "b", prev)

	_, ok = reg.Predecessor("unknown")
	assert.False(t, ok)
}

func TestValidateRejectsMismatchedGoal(t *testing.T) {
	s := sliderSpec("a")
	s.Kind = KindRadioGroup // goal still carries slider parameters
	assert.ErrorIs(t, s.Validate(), ErrConfig)

	s = sliderSpec("b")
	s.Goal.Toast = &ToastGoal{
		Toasts:        []ToastSpec{{ID: "t"}},
		TargetToastID: "t",
	}
	assert.ErrorIs(t, s.Validate(), ErrConfig, "two goal variants set")
}

func TestValidatePerKindShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"slider target outside range", Spec{ID: "x", Kind: KindSlider, Goal: Goal{Slider: &SliderGoal{
			TrackID: "t", Min: 0, Max: 10, TargetValue: 11, Tolerance: 1,
		}}}},
		{"radio target not an option", Spec{ID: "x", Kind: KindRadioGroup, Goal: Goal{RadioGroup: &RadioGroupGoal{
			OptionIDs: []string{"a", "b"}, TargetOptionID: "c",
		}}}},
		{"stepper initial outside range", Spec{ID: "x", Kind: KindStepper, Goal: Goal{Stepper: &StepperGoal{
			IncrementID: "p", DecrementID: "m", Min: 0, Max: 5, Initial: 9, TargetValue: 2,
		}}}},
		{"star index out of range", Spec{ID: "x", Kind: KindStarRating, Goal: Goal{StarRating: &StarRatingGoal{
			StarIDs: []string{"a", "b"}, TargetIndex: 3,
		}}}},
		{"tabs child not in target tab", Spec{ID: "x", Kind: KindTabs, Goal: Goal{Tabs: &TabsGoal{
			Tabs:        []Pane{{ID: "t1", ChildIDs: []string{"c1"}}, {ID: "t2", ChildIDs: []string{"c2"}}},
			TargetTabID: "t1", TargetChildID: "c2",
		}}}},
		{"accordion unknown section", Spec{ID: "x", Kind: KindAccordion, Goal: Goal{Accordion: &AccordionGoal{
			Sections:        []Pane{{ID: "s1", ChildIDs: []string{"c1"}}},
			TargetSectionID: "missing", TargetChildID: "c1",
		}}}},
		{"modal confirm doubling as dismiss", Spec{ID: "x", Kind: KindModal, Goal: Goal{Modal: &ModalGoal{
			TriggerID: "open", ConfirmID: "yes", DismissIDs: []string{"yes"},
		}}}},
		{"menu target not an option", Spec{ID: "x", Kind: KindContextMenu, Goal: Goal{ContextMenu: &ContextMenuGoal{
			SurfaceID: "s", OptionIDs: []string{"a"}, TargetOptionID: "b",
		}}}},
		{"autocomplete min_chars zero", Spec{ID: "x", Kind: KindAutocomplete, Goal: Goal{Autocomplete: &AutocompleteGoal{
			InputID: "q", MinChars: 0,
			Suggestions:        []Suggestion{{ID: "a", Label: "A"}},
			TargetSuggestionID: "a",
		}}}},
		{"sortable order not a permutation", Spec{ID: "x", Kind: KindSortableList, Goal: Goal{Sortable: &SortableGoal{
			ItemIDs: []string{"a", "b"}, TargetOrder: []string{"a", "a"},
		}}}},
		{"tags target outside tag set", Spec{ID: "x", Kind: KindMultiSelectTags, Goal: Goal{Tags: &TagsGoal{
			TagIDs: []string{"a", "b"}, TargetTagIDs: []string{"z"},
		}}}},
		{"toast duplicate ids", Spec{ID: "x", Kind: KindToast, Goal: Goal{Toast: &ToastGoal{
			Toasts:        []ToastSpec{{ID: "t"}, {ID: "t"}},
			TargetToastID: "t",
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig), "got %v, want ErrConfig", err)
		})
	}
}

func TestBuiltinCoversEveryKind(t *testing.T) {
	reg := Builtin()
	require.Equal(t, len(AllKinds()), reg.Len())

	seen := map[Kind]bool{}
	for _, s := range reg.All() {
		seen[s.Kind] = true
	}
	for _, k := range AllKinds() {
		assert.True(t, seen[k], "no built-in level for kind %q", k)
	}
}
