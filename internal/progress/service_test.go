package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gauntlet/internal/levels"
	"github.com/abhisek/gauntlet/internal/store"
)

func chainRegistry(t *testing.T, ids ...string) *levels.Registry {
	t.Helper()
	specs := make([]levels.Spec, 0, len(ids))
	for _, id := range ids {
		specs = append(specs, levels.Spec{
			ID:   id,
			Name: id,
			Kind: levels.KindRadioGroup,
			Goal: levels.Goal{RadioGroup: &levels.RadioGroupGoal{
				OptionIDs: []string{"a", "b"}, TargetOptionID: "b",
			}},
		})
	}
	reg, err := levels.Load(specs)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return reg
}

func TestUnlockChain(t *testing.T) {
	ctx := context.Background()
	reg := chainRegistry(t, "l1", "l2", "l3", "l4", "l5")
	svc := New(reg, store.NewMemoryRepo())

	ok, err := svc.IsUnlocked(ctx, "l1")
	if err != nil || !ok {
		t.Fatalf("first level unlocked = %v, %v; want true", ok, err)
	}
	if ok, _ := svc.IsUnlocked(ctx, "l2"); ok {
		t.Fatal("l2 unlocked before l1 completed")
	}

	// Completing l3 (however it got played) unlocks l4 and only l4.
	if _, err := svc.RecordAttempt(ctx, "l3", true, 5*time.Second); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if ok, _ := svc.IsUnlocked(ctx, "l4"); !ok {
		t.Error("l4 should unlock once l3 is completed")
	}
	if ok, _ := svc.IsUnlocked(ctx, "l5"); ok {
		t.Error("l5 must stay locked while l4 is incomplete")
	}

	// A failed attempt at l1 does not unlock l2.
	if _, err := svc.RecordAttempt(ctx, "l1", false, time.Second); err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if ok, _ := svc.IsUnlocked(ctx, "l2"); ok {
		t.Error("l2 unlocked by a failed attempt")
	}
}

func TestRecordAttemptUnknownLevel(t *testing.T) {
	svc := New(chainRegistry(t, "l1"), store.NewMemoryRepo())
	_, err := svc.RecordAttempt(context.Background(), "ghost", true, time.Second)
	if !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.IsUnlocked(context.Background(), "ghost"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("IsUnlocked err = %v, want ErrNotFound", err)
	}
}

func TestRecordAttemptBookkeeping(t *testing.T) {
	ctx := context.Background()
	svc := New(chainRegistry(t, "l1"), store.NewMemoryRepo())

	rec, err := svc.RecordAttempt(ctx, "l1", false, 2*time.Second)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Attempts != 1 || rec.Completed {
		t.Errorf("after failure rec = %+v", rec)
	}

	rec, _ = svc.RecordAttempt(ctx, "l1", true, 8*time.Second)
	if !rec.Completed || rec.Attempts != 2 || rec.BestDurationMs != 8000 {
		t.Errorf("after first completion rec = %+v", rec)
	}

	// Completion never unsets; best only lowers.
	rec, _ = svc.RecordAttempt(ctx, "l1", false, time.Second)
	if !rec.Completed {
		t.Error("failed replay unset completion")
	}
	rec, _ = svc.RecordAttempt(ctx, "l1", true, 3*time.Second)
	if rec.BestDurationMs != 3000 {
		t.Errorf("best = %d, want improved to 3000", rec.BestDurationMs)
	}
	rec, _ = svc.RecordAttempt(ctx, "l1", true, 30*time.Second)
	if rec.BestDurationMs != 3000 {
		t.Errorf("best = %d, slower run must not regress it", rec.BestDurationMs)
	}
}

func TestNextOpen(t *testing.T) {
	ctx := context.Background()
	reg := chainRegistry(t, "l1", "l2")
	svc := New(reg, store.NewMemoryRepo())

	spec, ok, err := svc.NextOpen(ctx)
	if err != nil || !ok || spec.ID != "l1" {
		t.Fatalf("next open = %q, %v, %v; want l1", spec.ID, ok, err)
	}

	svc.RecordAttempt(ctx, "l1", true, time.Second)
	spec, ok, _ = svc.NextOpen(ctx)
	if !ok || spec.ID != "l2" {
		t.Fatalf("next open = %q, want l2", spec.ID)
	}

	svc.RecordAttempt(ctx, "l2", true, time.Second)
	if _, ok, _ := svc.NextOpen(ctx); ok {
		t.Error("next open after finishing everything should report done")
	}
}
