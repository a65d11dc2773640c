package levels

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPack = `{
  "version": "1.2.0",
  "levels": [
    {
      "id": "custom-1",
      "name": "Warmup",
      "prompt": "Set the volume to 60.",
      "widget_kind": "slider",
      "goal": {
        "slider": {
          "track_id": "vol",
          "min": 0,
          "max": 100,
          "target_value": 60,
          "tolerance": 2
        }
      }
    },
    {
      "id": "custom-2",
      "name": "Confirm",
      "prompt": "Delete the file.",
      "widget_kind": "modal",
      "goal": {
        "modal": {
          "trigger_id": "delete",
          "confirm_id": "yes",
          "dismiss_ids": ["no"]
        }
      },
      "max_attempts": 3
    }
  ]
}`

func TestLoadPack(t *testing.T) {
	reg, err := LoadPack([]byte(validPack))
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	s, err := reg.Get("custom-2")
	require.NoError(t, err)
	assert.Equal(t, KindModal, s.Kind)
	assert.Equal(t, 3, s.MaxAttempts)

	prev, ok := reg.Predecessor("custom-2")
	require.True(t, ok)
	assert.Equal(t, "custom-1", prev)
}

func TestLoadPackRejectsBadJSON(t *testing.T) {
	_, err := LoadPack([]byte(`{"version": `))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadPackRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing version", `{"levels": []}`},
		{"levels not an array", `{"version": "1.0.0", "levels": {}}`},
		{"level without id", `{"version": "1.0.0", "levels": [
			{"name": "x", "prompt": "p", "widget_kind": "slider",
			 "goal": {"slider": {"track_id": "t", "min": 0, "max": 1, "target_value": 0.5, "tolerance": 0.1}}}
		]}`},
		{"unknown widget kind", `{"version": "1.0.0", "levels": [
			{"id": "a", "name": "x", "prompt": "p", "widget_kind": "dial",
			 "goal": {}}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPack([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestLoadPackVersionGate(t *testing.T) {
	for _, version := range []string{"2.0.0", "0.9.0"} {
		doc := fmt.Sprintf(`{"version": %q, "levels": [
			{"id": "a", "name": "x", "prompt": "p", "widget_kind": "slider",
			 "goal": {"slider": {"track_id": "t", "min": 0, "max": 1, "target_value": 0.5, "tolerance": 0.1}}}
		]}`, version)
		_, err := LoadPack([]byte(doc))
		assert.ErrorIs(t, err, ErrConfig, "version %s must be rejected", version)
	}
}

func TestLoadPackSemanticValidationStillApplies(t *testing.T) {
	// Schema-valid shape, semantically impossible goal: target outside range.
	doc := `{"version": "1.0.0", "levels": [
		{"id": "a", "name": "x", "prompt": "p", "widget_kind": "slider",
		 "goal": {"slider": {"track_id": "t", "min": 0, "max": 10, "target_value": 50, "tolerance": 1}}}
	]}`
	_, err := LoadPack([]byte(doc))
	assert.ErrorIs(t, err, ErrConfig)
}
