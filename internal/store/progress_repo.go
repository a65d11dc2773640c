package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteProgressRepo struct {
	db *sql.DB
}

func (r *sqliteProgressRepo) Load(ctx context.Context) ([]ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level_id, completed, attempts, best_duration_ms
		 FROM progress_records ORDER BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	defer rows.Close()

	var out []ProgressRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sqliteProgressRepo) Get(ctx context.Context, levelID string) (*ProgressRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT level_id, completed, attempts, best_duration_ms
		 FROM progress_records WHERE level_id = ?`, levelID)

	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteProgressRepo) Save(ctx context.Context, rec ProgressRecord) error {
	var best sql.NullInt64
	if rec.Completed {
		best = sql.NullInt64{Int64: rec.BestDurationMs, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress_records (level_id, completed, attempts, best_duration_ms, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id) DO UPDATE SET
			completed = excluded.completed,
			attempts = excluded.attempts,
			best_duration_ms = excluded.best_duration_ms,
			updated_at = CURRENT_TIMESTAMP`,
		rec.LevelID, boolToInt(rec.Completed), rec.Attempts, best)
	if err != nil {
		return fmt.Errorf("save progress for %q: %w", rec.LevelID, err)
	}
	return nil
}

func scanRecord(scan func(...any) error) (ProgressRecord, error) {
	var (
		rec       ProgressRecord
		completed int
		best      sql.NullInt64
	)
	if err := scan(&rec.LevelID, &completed, &rec.Attempts, &best); err != nil {
		return ProgressRecord{}, err
	}
	rec.Completed = completed != 0
	if best.Valid {
		rec.BestDurationMs = best.Int64
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
