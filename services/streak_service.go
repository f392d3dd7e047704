package services

import (
	"context"
	"fmt"

	"dailybite/store"
	"dailybite/utils"
)

// StreakService derives a user's consecutive-day streak from the date of
// their last qualifying activity. The caller supplies today's date, so the
// logic never reads the wall clock.
type StreakService struct {
	store store.Store
}

func NewStreakService(st store.Store) *StreakService {
	return &StreakService{store: st}
}

// UpdateStreak advances the streak for today. Calling it again on the same
// calendar day is a no-op on the counter; a gap of two or more days resets
// it to 1. A date before the stored streak date is refused rather than
// silently computing a negative streak.
func (s *StreakService) UpdateStreak(ctx context.Context, userID, today string) (int, error) {
	if _, err := utils.ParseDate(today); err != nil {
		return 0, fmt.Errorf("%w: malformed date %q", ErrInvalidArgument, today)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return 0, translateStoreErr(err)
	}

	newStreak := 1
	if user.LastStreakDate != "" {
		diff, err := utils.DaysBetween(user.LastStreakDate, today)
		if err != nil {
			return 0, fmt.Errorf("%w: stored streak date %q is malformed", ErrInvalidArgument, user.LastStreakDate)
		}
		switch {
		case diff < 0:
			return 0, fmt.Errorf("%w: date %s precedes last streak date %s", ErrInvalidArgument, today, user.LastStreakDate)
		case diff == 0:
			newStreak = user.Streak
		case diff == 1:
			newStreak = user.Streak + 1
		}
	}

	if err := s.store.SetStreak(ctx, userID, newStreak, today); err != nil {
		return 0, translateStoreErr(err)
	}
	return newStreak, nil
}
