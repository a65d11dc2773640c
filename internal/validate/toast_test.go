package validate

import (
	"testing"

	"github.com/abhisek/gauntlet/internal/levels"
)

// Two toasts, with the target racing its own expiry timer.
func newTestToast() *Toast {
	return newToast(&levels.ToastGoal{
		Toasts: []levels.ToastSpec{
			{ID: "t1", ExpiresMs: 5000},
			{ID: "t2", ExpiresMs: 3000},
		},
		TargetToastID: "t2",
	})
}

func TestToastDismissDistractorIsNoOp(t *testing.T) {
	m := newTestToast()

	out := m.Feed(click("t1"))
	if out.Status != Pending {
		t.Fatalf("dismissing distractor = %s, want pending", out.Status)
	}
	if m.Visible("t1") {
		t.Error("t1 should be gone after dismissal")
	}
	if !m.Visible("t2") {
		t.Error("t2 should still be visible")
	}

	// Target can still be dismissed afterwards.
	out = m.Feed(click("t2"))
	if out.Status != Completed {
		t.Errorf("dismissing target = %s, want completed", out.Status)
	}
}

func TestToastTargetExpiryFails(t *testing.T) {
	m := newTestToast()

	m.Feed(click("t1"))
	out := m.Feed(timer("t2"))
	if out.Status != Failed {
		t.Fatalf("target expiry = %s, want failed", out.Status)
	}

	// Dismissing after the expiry cannot revive the attempt.
	if out := m.Feed(click("t2")); out.Status != Failed {
		t.Errorf("post-expiry dismissal = %s, want failed (sticky)", out.Status)
	}
}

func TestToastDistractorExpiryIsHarmless(t *testing.T) {
	m := newTestToast()

	if out := m.Feed(timer("t1")); out.Status != Pending {
		t.Fatalf("distractor expiry = %s, want pending", out.Status)
	}
	if m.Visible("t1") {
		t.Error("expired distractor should be hidden")
	}

	if out := m.Feed(click("t2")); out.Status != Completed {
		t.Errorf("dismissing target = %s, want completed", out.Status)
	}
}

func TestToastDismissBeatsExpiry(t *testing.T) {
	m := newTestToast()

	if out := m.Feed(click("t2")); out.Status != Completed {
		t.Fatalf("dismissal = %s, want completed", out.Status)
	}
	// The expiry timer firing late must not retract the win.
	if out := m.Feed(timer("t2")); out.Status != Completed {
		t.Errorf("late expiry = %s, want completed (sticky)", out.Status)
	}
}

func TestToastClickOnHiddenToastIgnored(t *testing.T) {
	m := newTestToast()
	m.Feed(timer("t1"))
	if out := m.Feed(click("t1")); out.Status != Pending {
		t.Errorf("click on expired toast = %s, want pending", out.Status)
	}
	if out := m.Feed(click("unknown")); out.Status != Pending {
		t.Errorf("click on unknown toast = %s, want pending", out.Status)
	}
}
