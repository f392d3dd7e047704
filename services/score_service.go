package services

import (
	"context"
	"fmt"

	"dailybite/models"
	"dailybite/store"
	"dailybite/utils"
)

// ScoreService owns the one-best-score-per-user-per-day ledger and its point
// bookkeeping.
type ScoreService struct {
	store store.Store
}

func NewScoreService(st store.Store) *ScoreService {
	return &ScoreService{store: st}
}

// SubmitScoreResult reports whether a submission improved the daily record.
type SubmitScoreResult struct {
	Message     string
	IsNewRecord bool
}

// SubmitScore records a score for (userId, date), keeping the daily maximum.
// Total points move by the improvement delta only, so retries and lower
// re-submissions never double-credit.
func (s *ScoreService) SubmitScore(ctx context.Context, sub models.ScoreSubmission) (*SubmitScoreResult, error) {
	if sub.Score < 0 {
		return nil, fmt.Errorf("%w: score must be non-negative", ErrInvalidArgument)
	}
	if sub.TimeTaken < 0 {
		return nil, fmt.Errorf("%w: timeTaken must be non-negative", ErrInvalidArgument)
	}
	if _, err := utils.ParseDate(sub.Date); err != nil {
		return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidArgument, sub.Date)
	}
	if _, err := s.store.GetUser(ctx, sub.UserID); err != nil {
		return nil, translateStoreErr(err)
	}

	rec := models.ScoreRecord{
		UserID:     sub.UserID,
		Date:       sub.Date,
		Score:      sub.Score,
		TimeTaken:  sub.TimeTaken,
		Category:   sub.Category,
		Difficulty: sub.Difficulty,
	}

	prev, applied, err := s.store.UpsertBest(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !applied {
		return &SubmitScoreResult{Message: "Score recorded (not a new record)", IsNewRecord: false}, nil
	}

	// The record write has landed; crediting the delta is the retryable
	// second half of the mutation.
	if _, err := s.store.IncrementPoints(ctx, sub.UserID, sub.Score-prev); err != nil {
		return nil, translateStoreErr(err)
	}

	msg := "Score submitted!"
	if prev > 0 {
		msg = "Score updated!"
	}
	return &SubmitScoreResult{Message: msg, IsNewRecord: true}, nil
}
