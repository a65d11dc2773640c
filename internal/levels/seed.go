package levels

// seedSpecs is the built-in gauntlet: one level per widget kind, in
// ascending difficulty. The player unlocks each by completing the one
// before it.
var seedSpecs = []Spec{
	{
		ID:     "level-1",
		Name:   "Level 1",
		Prompt: "Set Volume to 60",
		Kind:   KindSlider,
		Goal: Goal{Slider: &SliderGoal{
			TrackID:     "volume",
			Min:         0,
			Max:         100,
			TargetValue: 60,
			Tolerance:   2,
		}},
	},
	{
		ID:     "level-2",
		Name:   "Level 2",
		Prompt: "Choose the Weekly digest",
		Kind:   KindRadioGroup,
		Goal: Goal{RadioGroup: &RadioGroupGoal{
			OptionIDs:      []string{"digest-daily", "digest-weekly", "digest-monthly", "digest-never"},
			TargetOptionID: "digest-weekly",
		}},
	},
	{
		ID:     "level-3",
		Name:   "Level 3",
		Prompt: "Set quantity to 7",
		Kind:   KindStepper,
		Goal: Goal{Stepper: &StepperGoal{
			IncrementID: "qty-plus",
			DecrementID: "qty-minus",
			Min:         0,
			Max:         10,
			Initial:     2,
			TargetValue: 7,
		}},
	},
	{
		ID:     "level-4",
		Name:   "Level 4",
		Prompt: "Rate the headphones 4 out of 5",
		Kind:   KindStarRating,
		Goal: Goal{StarRating: &StarRatingGoal{
			StarIDs:     []string{"star-1", "star-2", "star-3", "star-4", "star-5"},
			TargetIndex: 4,
		}},
	},
	{
		ID:     "level-5",
		Name:   "Level 5",
		Prompt: "Open the Privacy tab and turn on tracking protection",
		Kind:   KindTabs,
		Goal: Goal{Tabs: &TabsGoal{
			Tabs: []Pane{
				{ID: "tab-general", ChildIDs: []string{"language", "startup"}},
				{ID: "tab-privacy", ChildIDs: []string{"tracking-protection", "clear-history"}},
				{ID: "tab-advanced", ChildIDs: []string{"proxy", "certificates"}},
			},
			TargetTabID:   "tab-privacy",
			TargetChildID: "tracking-protection",
		}},
	},
	{
		ID:     "level-6",
		Name:   "Level 6",
		Prompt: "Expand Shipping and pick express delivery",
		Kind:   KindAccordion,
		Goal: Goal{Accordion: &AccordionGoal{
			Sections: []Pane{
				{ID: "sec-reviews", ChildIDs: []string{"review-sort", "review-filter"}},
				{ID: "sec-shipping", ChildIDs: []string{"ship-standard", "ship-express"}},
				{ID: "sec-returns", ChildIDs: []string{"returns-policy"}},
			},
			TargetSectionID: "sec-shipping",
			TargetChildID:   "ship-express",
		}},
	},
	{
		ID:     "level-7",
		Name:   "Level 7",
		Prompt: "Delete the file and confirm",
		Kind:   KindModal,
		Goal: Goal{Modal: &ModalGoal{
			TriggerID:  "delete-file",
			ConfirmID:  "confirm-delete",
			DismissIDs: []string{"cancel-delete", "modal-close"},
		}},
	},
	{
		ID:     "level-8",
		Name:   "Level 8",
		Prompt: "Right-click report.pdf and Open in Editor",
		Kind:   KindContextMenu,
		Goal: Goal{ContextMenu: &ContextMenuGoal{
			SurfaceID:      "file-report",
			OptionIDs:      []string{"menu-open", "menu-open-editor", "menu-rename", "menu-delete"},
			TargetOptionID: "menu-open-editor",
		}},
	},
	{
		ID:     "level-9",
		Name:   "Level 9",
		Prompt: "Search for TypeScript and select it",
		Kind:   KindAutocomplete,
		Goal: Goal{Autocomplete: &AutocompleteGoal{
			InputID:  "language-search",
			MinChars: 2,
			Suggestions: []Suggestion{
				{ID: "lang-ts", Label: "TypeScript"},
				{ID: "lang-tcl", Label: "Tcl"},
				{ID: "lang-turing", Label: "Turing"},
				{ID: "lang-typst", Label: "Typst"},
			},
			TargetSuggestionID: "lang-ts",
		}},
	},
	{
		ID:     "level-10",
		Name:   "Level 10",
		Prompt: "Put the recipe steps in order: preheat, mix, bake, frost",
		Kind:   KindSortableList,
		Goal: Goal{Sortable: &SortableGoal{
			ItemIDs:     []string{"step-bake", "step-preheat", "step-frost", "step-mix"},
			TargetOrder: []string{"step-preheat", "step-mix", "step-bake", "step-frost"},
		}},
	},
	{
		ID:     "level-11",
		Name:   "Level 11",
		Prompt: "Select exactly Go and Rust",
		Kind:   KindMultiSelectTags,
		Goal: Goal{Tags: &TagsGoal{
			TagIDs:       []string{"tag-go", "tag-rust", "tag-python", "tag-java", "tag-ruby"},
			TargetTagIDs: []string{"tag-go", "tag-rust"},
			InitialIDs:   []string{"tag-python"},
		}},
	},
	{
		ID:        "level-12",
		Name:      "Level 12",
		Prompt:    "Dismiss the \"Session expired\" notification before it disappears",
		Kind:      KindToast,
		TimeoutMs: 15000,
		Goal: Goal{Toast: &ToastGoal{
			Toasts: []ToastSpec{
				{ID: "toast-upload", Message: "File uploaded successfully", ExpiresMs: 9000},
				{ID: "toast-session", Message: "Session expired", ExpiresMs: 6000},
				{ID: "toast-update", Message: "New version available"},
			},
			TargetToastID: "toast-session",
		}},
	},
}

// builtin is the registry for the seed pack, built at package init.
var builtin *Registry

func init() {
	r, err := Load(seedSpecs)
	if err != nil {
		panic("levels: seed pack invalid: " + err.Error())
	}
	builtin = r
}

// Builtin returns the registry holding the built-in gauntlet.
func Builtin() *Registry {
	return builtin
}
