package services

import (
	"context"
	"errors"
	"testing"

	"dailybite/models"
	"dailybite/store"
)

func newRewardFixture(t *testing.T) (*RewardService, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	if _, err := st.UpsertUser(context.Background(), models.User{UID: "u1"}); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return NewRewardService(st, "test-secret"), st
}

func TestProcessRewardCreditsOnce(t *testing.T) {
	svc, st := newRewardFixture(t)
	ctx := context.Background()

	req := models.RewardRequest{
		UserID: "u1", RewardType: "ad_watch", RewardAmount: 25, Timestamp: "2024-01-01T10:00:00Z",
	}

	res, err := svc.ProcessReward(ctx, req)
	if err != nil {
		t.Fatalf("ProcessReward failed: %v", err)
	}
	if !res.Accepted {
		t.Errorf("Expected first credit to be accepted")
	}
	if res.NewTotalPoints != 25 {
		t.Errorf("Expected new total 25, got %d", res.NewTotalPoints)
	}

	// identical retry must not credit again and must not error
	res, err = svc.ProcessReward(ctx, req)
	if err != nil {
		t.Fatalf("Duplicate ProcessReward errored: %v", err)
	}
	if res.Accepted {
		t.Errorf("Expected duplicate credit to be rejected")
	}
	if res.Message != "Reward already processed" {
		t.Errorf("Unexpected duplicate message: %q", res.Message)
	}

	user, _ := st.GetUser(ctx, "u1")
	if user.TotalPoints != 25 {
		t.Errorf("Duplicate credit mutated total points: %d", user.TotalPoints)
	}
}

func TestProcessRewardFloorsFractionalAmount(t *testing.T) {
	svc, _ := newRewardFixture(t)

	res, err := svc.ProcessReward(context.Background(), models.RewardRequest{
		UserID: "u1", RewardType: "ad_watch", RewardAmount: 25.7, Timestamp: "2024-01-01T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("ProcessReward failed: %v", err)
	}
	if res.NewTotalPoints != 25 {
		t.Errorf("Expected floor(25.7) = 25 points, got %d", res.NewTotalPoints)
	}
}

func TestProcessRewardDistinctTimestampsCreditSeparately(t *testing.T) {
	svc, st := newRewardFixture(t)
	ctx := context.Background()

	for _, ts := range []string{"2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"} {
		res, err := svc.ProcessReward(ctx, models.RewardRequest{
			UserID: "u1", RewardType: "ad_watch", RewardAmount: 10, Timestamp: ts,
		})
		if err != nil {
			t.Fatalf("ProcessReward(%s) failed: %v", ts, err)
		}
		if !res.Accepted {
			t.Errorf("Expected credit for timestamp %s to be accepted", ts)
		}
	}

	user, _ := st.GetUser(ctx, "u1")
	if user.TotalPoints != 20 {
		t.Errorf("Expected two separate credits totalling 20, got %d", user.TotalPoints)
	}
}

func TestProcessRewardInvalidAmounts(t *testing.T) {
	svc, st := newRewardFixture(t)
	ctx := context.Background()

	for _, amount := range []float64{0, -5, 150} {
		_, err := svc.ProcessReward(ctx, models.RewardRequest{
			UserID: "u1", RewardType: "ad_watch", RewardAmount: amount, Timestamp: "2024-01-01T10:00:00Z",
		})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ProcessReward(amount=%v) error = %v, want ErrInvalidArgument", amount, err)
		}
	}

	user, _ := st.GetUser(ctx, "u1")
	if user.TotalPoints != 0 {
		t.Errorf("Invalid amounts mutated total points: %d", user.TotalPoints)
	}
}

func TestProcessRewardUnknownUser(t *testing.T) {
	svc, _ := newRewardFixture(t)

	_, err := svc.ProcessReward(context.Background(), models.RewardRequest{
		UserID: "ghost", RewardType: "ad_watch", RewardAmount: 10, Timestamp: "2024-01-01T10:00:00Z",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}
