package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dailybite/models"
	"dailybite/store"
	"dailybite/utils"
)

// RewardService credits ad rewards at most once per transaction fingerprint.
type RewardService struct {
	store  store.Store
	secret string
}

func NewRewardService(st store.Store, secret string) *RewardService {
	return &RewardService{store: st, secret: secret}
}

// RewardResult is the outcome of a reward credit attempt. A duplicate
// transaction comes back with Accepted=false and no error: it is a normal
// consequence of client retries, not a failure.
type RewardResult struct {
	Accepted       bool
	Message        string
	RewardAmount   float64
	NewTotalPoints int
}

// ProcessReward validates and credits one ad-reward transaction. The
// uniqueness constraint on the transaction hash is what guarantees exactly
// one credit under concurrent identical requests; the upfront lookup only
// short-circuits the common retry case.
func (s *RewardService) ProcessReward(ctx context.Context, req models.RewardRequest) (*RewardResult, error) {
	hash := utils.TransactionHash(req.UserID, req.RewardAmount, req.Timestamp, s.secret)

	if _, err := s.store.GetReward(ctx, hash); err == nil {
		return &RewardResult{Accepted: false, Message: "Reward already processed"}, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if req.RewardAmount <= 0 || req.RewardAmount > 100 {
		return nil, fmt.Errorf("%w: reward amount %v out of range (0, 100]", ErrInvalidArgument, req.RewardAmount)
	}

	if _, err := s.store.GetUser(ctx, req.UserID); err != nil {
		return nil, translateStoreErr(err)
	}

	rec := models.RewardRecord{
		UserID:          req.UserID,
		RewardType:      req.RewardType,
		Amount:          req.RewardAmount,
		AdUnitID:        req.AdUnitID,
		TransactionHash: hash,
		ProcessedAt:     time.Now().UTC(),
		Verified:        true,
	}
	if err := s.store.InsertReward(ctx, rec); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// lost the race against an identical request
			return &RewardResult{Accepted: false, Message: "Reward already processed"}, nil
		}
		return nil, err
	}

	total, err := s.store.IncrementPoints(ctx, req.UserID, int(req.RewardAmount))
	if err != nil {
		return nil, translateStoreErr(err)
	}

	return &RewardResult{
		Accepted:       true,
		Message:        "Reward processed successfully",
		RewardAmount:   req.RewardAmount,
		NewTotalPoints: total,
	}, nil
}
