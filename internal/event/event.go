// Package event defines the canonical interaction event stream and the
// normalizer that produces it from raw host input. Events carry no widget
// semantics; interpreting them is the job of the validation machines.
package event

// Type identifies the kind of a normalized interaction event.
type Type int

const (
	PointerDown Type = iota
	PointerMove
	PointerUp
	Click
	RightClick
	KeyInput
	TimerExpired
)

// String returns the event type name for logs and outcome reasons.
func (t Type) String() string {
	switch t {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case KeyInput:
		return "key-input"
	case TimerExpired:
		return "timer-expired"
	}
	return "unknown"
}

// Event is one normalized interaction delivered to the active validation
// machine. Target is the host's stable identifier for the element under the
// interaction. Value carries continuous positions (slider drags), Text carries
// typed input or key names. TimeMs is milliseconds on the host's monotonic
// timeline, non-decreasing across a session.
type Event struct {
	Type   Type
	Target string
	Value  float64
	Text   string
	TimeMs int64
}
