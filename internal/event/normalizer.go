package event

// Button identifies which pointer button a raw input used.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// RawKind identifies the kind of a raw host input.
type RawKind int

const (
	RawPointerDown RawKind = iota
	RawPointerMove
	RawPointerUp
	RawClick
	RawKey
	RawTimer
)

// RawInput is one callback from the host boundary, before normalization.
type RawInput struct {
	Kind   RawKind
	Button Button
	Target string
	Value  float64
	Text   string
	TimeMs int64
}

// DefaultMoveThrottleMs is the minimum gap between emitted pointer-move
// events during a drag. Moves arriving faster are coalesced; the last
// position is never lost because it is flushed before the PointerUp.
const DefaultMoveThrottleMs = 16

// Normalizer converts raw host input into the canonical event stream.
// It coalesces pointer moves, maps secondary-button input to RightClick,
// and clamps timestamps to be non-decreasing. One normalizer serves one
// session; it holds no widget state.
type Normalizer struct {
	throttleMs int64

	lastMoveMs  int64
	pendingMove *Event
	lastTimeMs  int64
}

// NewNormalizer creates a normalizer with the given move-throttle interval.
// A throttle of 0 uses DefaultMoveThrottleMs.
func NewNormalizer(throttleMs int64) *Normalizer {
	if throttleMs <= 0 {
		throttleMs = DefaultMoveThrottleMs
	}
	return &Normalizer{throttleMs: throttleMs, lastMoveMs: -throttleMs}
}

// Push normalizes one raw input. It returns zero or more events ready to
// feed, in order, and whether the host should suppress its default handling
// (true exactly for secondary-button input, so the engine's own context menu
// owns the gesture).
func (n *Normalizer) Push(raw RawInput) (events []Event, suppressDefault bool) {
	ts := n.clamp(raw.TimeMs)

	switch raw.Kind {
	case RawPointerDown:
		if raw.Button == ButtonSecondary {
			return []Event{{Type: RightClick, Target: raw.Target, TimeMs: ts}}, true
		}
		n.pendingMove = nil
		n.lastMoveMs = ts - n.throttleMs
		return []Event{{Type: PointerDown, Target: raw.Target, Value: raw.Value, TimeMs: ts}}, false

	case RawPointerMove:
		ev := Event{Type: PointerMove, Target: raw.Target, Value: raw.Value, TimeMs: ts}
		if ts-n.lastMoveMs >= n.throttleMs {
			n.lastMoveMs = ts
			n.pendingMove = nil
			return []Event{ev}, false
		}
		// Too soon: hold the latest position for the next flush.
		n.pendingMove = &ev
		return nil, false

	case RawPointerUp:
		up := Event{Type: PointerUp, Target: raw.Target, Value: raw.Value, TimeMs: ts}
		if n.pendingMove != nil {
			flushed := *n.pendingMove
			n.pendingMove = nil
			return []Event{flushed, up}, false
		}
		return []Event{up}, false

	case RawClick:
		if raw.Button == ButtonSecondary {
			return []Event{{Type: RightClick, Target: raw.Target, TimeMs: ts}}, true
		}
		return []Event{{Type: Click, Target: raw.Target, Value: raw.Value, TimeMs: ts}}, false

	case RawKey:
		return []Event{{Type: KeyInput, Target: raw.Target, Text: raw.Text, TimeMs: ts}}, false

	case RawTimer:
		return []Event{{Type: TimerExpired, Target: raw.Target, TimeMs: ts}}, false
	}

	return nil, false
}

// clamp enforces a non-decreasing timeline even if the host misbehaves.
func (n *Normalizer) clamp(ts int64) int64 {
	if ts < n.lastTimeMs {
		ts = n.lastTimeMs
	}
	n.lastTimeMs = ts
	return ts
}
