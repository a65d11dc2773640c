package validate

import (
	"fmt"

	"github.com/abhisek/gauntlet/internal/event"
	"github.com/abhisek/gauntlet/internal/levels"
)

// StarRating validates a rating click. Clicking star N sets the rating to N
// outright (idempotent, not cumulative); a re-click with a different index
// overwrites the previous rating.
type StarRating struct {
	core
	goal   levels.StarRatingGoal
	rating int
}

func newStarRating(g *levels.StarRatingGoal) *StarRating {
	return &StarRating{goal: *g}
}

func (m *StarRating) Feed(ev event.Event) Outcome {
	if out, ok := m.gate(ev); !ok {
		return out
	}
	if ev.Type != event.Click {
		return pending
	}

	idx := 0
	for i, id := range m.goal.StarIDs {
		if id == ev.Target {
			idx = i + 1
			break
		}
	}
	if idx == 0 {
		return pending
	}

	m.rating = idx
	if m.rating == m.goal.TargetIndex {
		return m.complete(fmt.Sprintf("rated %d", m.rating))
	}
	return pending
}

func (m *StarRating) Phase() Phase {
	if p, ok := m.terminalPhase(); ok {
		return p
	}
	return PhaseIdle
}

// Rating returns the current rating, or 0 before any click.
func (m *StarRating) Rating() int { return m.rating }

// Goal returns the star rating parameters for rendering.
func (m *StarRating) Goal() levels.StarRatingGoal { return m.goal }
