package services

import (
	"context"
	"errors"
	"fmt"

	"dailybite/models"
	"dailybite/store"
	"dailybite/utils"
)

// Leaderboard periods accepted by the aggregator.
const (
	PeriodToday   = "today"
	PeriodAllTime = "allTime"
)

const defaultLeaderboardLimit = 50

// LeaderboardService produces ranked views over the score ledger. Every call
// recomputes from stored state; there is no cursor or cache between calls.
type LeaderboardService struct {
	store store.Store
}

func NewLeaderboardService(st store.Store) *LeaderboardService {
	return &LeaderboardService{store: st}
}

// Leaderboard dispatches on period. An unknown period is a caller error,
// distinct from an empty board.
func (s *LeaderboardService) Leaderboard(ctx context.Context, period, today string, limit int) (any, error) {
	switch period {
	case PeriodToday:
		return s.Today(ctx, today, limit)
	case PeriodAllTime:
		return s.AllTime(ctx, limit)
	default:
		return nil, fmt.Errorf("%w: unknown leaderboard period %q", ErrInvalidArgument, period)
	}
}

// Today ranks one date's records: score descending, ties broken by the
// faster solve.
func (s *LeaderboardService) Today(ctx context.Context, date string, limit int) ([]models.TodayEntry, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidArgument, date)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	recs, err := s.store.TopForDate(ctx, date, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.TodayEntry, 0, len(recs))
	for i, rec := range recs {
		name, err := s.displayName(ctx, rec.UserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.TodayEntry{
			UserID:    rec.UserID,
			UserName:  name,
			Score:     rec.Score,
			TimeTaken: rec.TimeTaken,
			Rank:      i + 1,
			Date:      rec.Date,
		})
	}
	return entries, nil
}

// AllTime ranks users by cumulative score across all their daily records.
func (s *LeaderboardService) AllTime(ctx context.Context, limit int) ([]models.AllTimeEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	rows, err := s.store.AllTime(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.AllTimeEntry, 0, len(rows))
	for i, row := range rows {
		name, err := s.displayName(ctx, row.UserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.AllTimeEntry{
			UserID:      row.UserID,
			UserName:    name,
			TotalScore:  row.TotalScore,
			BestScore:   row.BestScore,
			GamesPlayed: row.GamesPlayed,
			Rank:        i + 1,
		})
	}
	return entries, nil
}

func (s *LeaderboardService) displayName(ctx context.Context, uid string) (string, error) {
	user, err := s.store.GetUser(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return "Anonymous", nil
	}
	if err != nil {
		return "", err
	}
	if user.DisplayName == "" {
		return "Anonymous", nil
	}
	return user.DisplayName, nil
}
