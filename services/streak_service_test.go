package services

import (
	"context"
	"errors"
	"testing"

	"dailybite/models"
	"dailybite/store"
)

func newStreakFixture(t *testing.T) (*StreakService, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	if _, err := st.UpsertUser(context.Background(), models.User{UID: "u1"}); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return NewStreakService(st), st
}

func TestUpdateStreakSequence(t *testing.T) {
	svc, st := newStreakFixture(t)
	ctx := context.Background()

	steps := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1}, // first ever activity
		{"2024-01-02", 2}, // consecutive day
		{"2024-01-02", 2}, // same-day re-call, idempotent
		{"2024-01-05", 1}, // gap, reset
	}
	for _, step := range steps {
		streak, err := svc.UpdateStreak(ctx, "u1", step.date)
		if err != nil {
			t.Fatalf("UpdateStreak(%s) failed: %v", step.date, err)
		}
		if streak != step.want {
			t.Errorf("UpdateStreak(%s) = %d, want %d", step.date, streak, step.want)
		}
	}

	user, _ := st.GetUser(ctx, "u1")
	if user.LastStreakDate != "2024-01-05" {
		t.Errorf("Expected last streak date 2024-01-05, got %s", user.LastStreakDate)
	}
	if user.Streak != 1 {
		t.Errorf("Expected stored streak 1, got %d", user.Streak)
	}
}

func TestUpdateStreakBumpsLastActive(t *testing.T) {
	svc, st := newStreakFixture(t)
	ctx := context.Background()

	before, _ := st.GetUser(ctx, "u1")
	if _, err := svc.UpdateStreak(ctx, "u1", "2024-01-01"); err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}
	after, _ := st.GetUser(ctx, "u1")
	if after.LastActive.Before(before.LastActive) {
		t.Errorf("Expected last_active to be bumped")
	}
}

func TestUpdateStreakBackdatedCallRejected(t *testing.T) {
	svc, st := newStreakFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateStreak(ctx, "u1", "2024-01-10"); err != nil {
		t.Fatalf("UpdateStreak failed: %v", err)
	}

	_, err := svc.UpdateStreak(ctx, "u1", "2024-01-08")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for backdated call, got %v", err)
	}

	// no mutation on the refused path
	user, _ := st.GetUser(ctx, "u1")
	if user.Streak != 1 || user.LastStreakDate != "2024-01-10" {
		t.Errorf("Backdated call mutated state: streak=%d date=%s", user.Streak, user.LastStreakDate)
	}
}

func TestUpdateStreakUnknownUser(t *testing.T) {
	svc, _ := newStreakFixture(t)

	_, err := svc.UpdateStreak(context.Background(), "ghost", "2024-01-01")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestUpdateStreakMalformedDate(t *testing.T) {
	svc, _ := newStreakFixture(t)

	_, err := svc.UpdateStreak(context.Background(), "u1", "01/02/2024")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for malformed date, got %v", err)
	}
}
