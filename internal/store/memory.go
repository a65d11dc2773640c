package store

import (
	"context"
	"sort"
)

// MemoryRepo is an in-memory ProgressRepo for tests and storage-less play.
type MemoryRepo struct {
	records map[string]ProgressRecord
}

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]ProgressRecord)}
}

func (r *MemoryRepo) Load(ctx context.Context) ([]ProgressRecord, error) {
	out := make([]ProgressRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LevelID < out[j].LevelID })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, levelID string) (*ProgressRecord, error) {
	rec, ok := r.records[levelID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *MemoryRepo) Save(ctx context.Context, rec ProgressRecord) error {
	r.records[rec.LevelID] = rec
	return nil
}
