// Package progress tracks which levels are completed and enforces the
// linear unlock chain.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/store"
)

// Service layers unlock and best-time bookkeeping over a ProgressRepo.
type Service struct {
	reg  *levels.Registry
	repo store.ProgressRepo
}

// New creates a progress service over the given registry and repo.
func New(reg *levels.Registry, repo store.ProgressRepo) *Service {
	return &Service{reg: reg, repo: repo}
}

// RecordAttempt increments the attempt count for one finished (or abandoned)
// attempt and, when completed is true, marks the level done and lowers the
// best duration if improved. The updated record is returned. Unknown level
// IDs fail with levels.ErrNotFound and mutate nothing.
func (s *Service) RecordAttempt(ctx context.Context, levelID string, completed bool, duration time.Duration) (store.ProgressRecord, error) {
	if !s.reg.Has(levelID) {
		return store.ProgressRecord{}, fmt.Errorf("%w: %q", levels.ErrNotFound, levelID)
	}

	existing, err := s.repo.Get(ctx, levelID)
	if err != nil {
		return store.ProgressRecord{}, err
	}

	rec := store.ProgressRecord{LevelID: levelID}
	if existing != nil {
		rec = *existing
	}
	rec.Attempts++

	if completed {
		ms := duration.Milliseconds()
		if !rec.Completed || ms < rec.BestDurationMs {
			rec.BestDurationMs = ms
		}
		rec.Completed = true
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return store.ProgressRecord{}, err
	}
	return rec, nil
}

// IsUnlocked reports whether the level may be attempted: the first level is
// always unlocked, every other level requires its predecessor completed.
func (s *Service) IsUnlocked(ctx context.Context, levelID string) (bool, error) {
	if !s.reg.Has(levelID) {
		return false, fmt.Errorf("%w: %q", levels.ErrNotFound, levelID)
	}

	pred, ok := s.reg.Predecessor(levelID)
	if !ok {
		return true, nil
	}
	rec, err := s.repo.Get(ctx, pred)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.Completed, nil
}

// Record returns the persisted record for a level, or a zero record if the
// level has never been attempted.
func (s *Service) Record(ctx context.Context, levelID string) (store.ProgressRecord, error) {
	if !s.reg.Has(levelID) {
		return store.ProgressRecord{}, fmt.Errorf("%w: %q", levels.ErrNotFound, levelID)
	}
	rec, err := s.repo.Get(ctx, levelID)
	if err != nil {
		return store.ProgressRecord{}, err
	}
	if rec == nil {
		return store.ProgressRecord{LevelID: levelID}, nil
	}
	return *rec, nil
}

// Records returns every persisted record keyed by level id.
func (s *Service) Records(ctx context.Context) (map[string]store.ProgressRecord, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]store.ProgressRecord, len(all))
	for _, rec := range all {
		out[rec.LevelID] = rec
	}
	return out, nil
}

// NextOpen returns the first level in the chain that is unlocked but not yet
// completed. ok is false once the whole gauntlet is done.
func (s *Service) NextOpen(ctx context.Context) (levels.Spec, bool, error) {
	for _, spec := range s.reg.All() {
		rec, err := s.repo.Get(ctx, spec.ID)
		if err != nil {
			return levels.Spec{}, false, err
		}
		if rec == nil || !rec.Completed {
			return spec, true, nil
		}
	}
	return levels.Spec{}, false, nil
}
