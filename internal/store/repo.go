package store

import "context"

// ProgressRecord is the persisted state of one level. A record exists from
// the first attempt on; it is updated in place and never deleted.
// BestDurationMs is meaningful only while Completed is true.
type ProgressRecord struct {
	LevelID        string
	Completed      bool
	Attempts       int
	BestDurationMs int64
}

// ProgressRepo reads and writes progression records.
type ProgressRepo interface {
	// Load returns every record.
	Load(ctx context.Context) ([]ProgressRecord, error)

	// Get returns the record for levelID, or nil if none exists yet.
	Get(ctx context.Context, levelID string) (*ProgressRecord, error)

	// Save upserts a record by level id.
	Save(ctx context.Context, rec ProgressRecord) error
}
