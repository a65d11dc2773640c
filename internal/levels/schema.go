package levels

// packSchema is the JSON Schema every level pack document must satisfy
// before unmarshalling. Structural shape only; cross-field rules (target
// membership, tolerance bounds) live in Spec.Validate.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"levels": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    levelSchema,
		},
	},
	"required":             []any{"version", "levels"},
	"additionalProperties": false,
}

var levelSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"name":   map[string]any{"type": "string"},
		"prompt": map[string]any{"type": "string"},
		"widget_kind": map[string]any{
			"type": "string",
			"enum": []any{
				"slider", "radio-group", "stepper", "star-rating",
				"tabs", "accordion", "modal", "context-menu",
				"autocomplete", "sortable-list", "multi-select-tags", "toast",
			},
		},
		"timeout_ms":   map[string]any{"type": "integer", "minimum": 0},
		"max_attempts": map[string]any{"type": "integer", "minimum": 0},
		"goal": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"maxProperties": 1,
			"properties": map[string]any{
				"slider": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"track_id":     map[string]any{"type": "string"},
						"min":          map[string]any{"type": "number"},
						"max":          map[string]any{"type": "number"},
						"target_value": map[string]any{"type": "number"},
						"tolerance":    map[string]any{"type": "number"},
					},
					"required":             []any{"track_id", "min", "max", "target_value", "tolerance"},
					"additionalProperties": false,
				},
				"radio_group": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"option_ids":       stringArray,
						"target_option_id": map[string]any{"type": "string"},
					},
					"required":             []any{"option_ids", "target_option_id"},
					"additionalProperties": false,
				},
				"stepper": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"increment_id": map[string]any{"type": "string"},
						"decrement_id": map[string]any{"type": "string"},
						"min":          map[string]any{"type": "integer"},
						"max":          map[string]any{"type": "integer"},
						"initial":      map[string]any{"type": "integer"},
						"target_value": map[string]any{"type": "integer"},
					},
					"required":             []any{"increment_id", "decrement_id", "min", "max", "initial", "target_value"},
					"additionalProperties": false,
				},
				"star_rating": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"star_ids":     stringArray,
						"target_index": map[string]any{"type": "integer", "minimum": 1},
					},
					"required":             []any{"star_ids", "target_index"},
					"additionalProperties": false,
				},
				"tabs": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"tabs":            paneArray,
						"target_tab_id":   map[string]any{"type": "string"},
						"target_child_id": map[string]any{"type": "string"},
					},
					"required":             []any{"tabs", "target_tab_id", "target_child_id"},
					"additionalProperties": false,
				},
				"accordion": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sections":          paneArray,
						"target_section_id": map[string]any{"type": "string"},
						"target_child_id":   map[string]any{"type": "string"},
					},
					"required":             []any{"sections", "target_section_id", "target_child_id"},
					"additionalProperties": false,
				},
				"modal": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"trigger_id":      map[string]any{"type": "string"},
						"confirm_id":      map[string]any{"type": "string"},
						"dismiss_ids":     stringArray,
						"fail_on_dismiss": map[string]any{"type": "boolean"},
					},
					"required":             []any{"trigger_id", "confirm_id"},
					"additionalProperties": false,
				},
				"context_menu": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"surface_id":       map[string]any{"type": "string"},
						"option_ids":       stringArray,
						"target_option_id": map[string]any{"type": "string"},
					},
					"required":             []any{"surface_id", "option_ids", "target_option_id"},
					"additionalProperties": false,
				},
				"autocomplete": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input_id":  map[string]any{"type": "string"},
						"min_chars": map[string]any{"type": "integer", "minimum": 1},
						"suggestions": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":    map[string]any{"type": "string"},
									"label": map[string]any{"type": "string"},
								},
								"required":             []any{"id", "label"},
								"additionalProperties": false,
							},
						},
						"target_suggestion_id": map[string]any{"type": "string"},
					},
					"required":             []any{"input_id", "min_chars", "suggestions", "target_suggestion_id"},
					"additionalProperties": false,
				},
				"sortable_list": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item_ids":     stringArray,
						"target_order": stringArray,
					},
					"required":             []any{"item_ids", "target_order"},
					"additionalProperties": false,
				},
				"multi_select_tags": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"tag_ids":        stringArray,
						"target_tag_ids": stringArray,
						"initial_ids":    stringArray,
					},
					"required":             []any{"tag_ids", "target_tag_ids"},
					"additionalProperties": false,
				},
				"toast": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"toasts": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":         map[string]any{"type": "string"},
									"message":    map[string]any{"type": "string"},
									"expires_ms": map[string]any{"type": "integer", "minimum": 0},
								},
								"required":             []any{"id"},
								"additionalProperties": false,
							},
						},
						"target_toast_id": map[string]any{"type": "string"},
					},
					"required":             []any{"toasts", "target_toast_id"},
					"additionalProperties": false,
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "name", "prompt", "widget_kind", "goal"},
	"additionalProperties": false,
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var paneArray = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":        map[string]any{"type": "string"},
			"child_ids": stringArray,
		},
		"required":             []any{"id", "child_ids"},
		"additionalProperties": false,
	},
}
