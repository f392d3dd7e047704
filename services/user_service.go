package services

import (
	"context"
	"errors"
	"math"

	"dailybite/models"
	"dailybite/store"

	"github.com/google/uuid"
)

// UserService handles profile upserts and composed statistic reads.
type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// UserProfile is the composed read behind GET /users/:userId.
type UserProfile struct {
	User          *models.User `json:"user"`
	TodayScore    int          `json:"today_score"`
	PuzzlesSolved int64        `json:"puzzles_solved"`
}

// RecentScore is a trimmed score record for the stats view.
type RecentScore struct {
	Score     int    `json:"score"`
	Date      string `json:"date"`
	TimeTaken int    `json:"time_taken"`
}

// UserStats is the comprehensive statistics view for one user.
type UserStats struct {
	UserID       string        `json:"user_id"`
	DisplayName  string        `json:"display_name"`
	Streak       int           `json:"streak"`
	TotalPoints  int           `json:"total_points"`
	TotalGames   int64         `json:"total_games"`
	BestScore    int           `json:"best_score"`
	SuccessRate  float64       `json:"success_rate"`
	RecentScores []RecentScore `json:"recent_scores"`
}

// CreateOrUpdateUser upserts the profile keyed by uid, assigning one when the
// client did not send it. Returns the stored document and whether it was
// created on this call.
func (s *UserService) CreateOrUpdateUser(ctx context.Context, user models.User) (*models.User, bool, error) {
	if user.UID == "" {
		user.UID = uuid.NewString()
	}

	created, err := s.store.UpsertUser(ctx, user)
	if err != nil {
		return nil, false, err
	}
	stored, err := s.store.GetUser(ctx, user.UID)
	if err != nil {
		return nil, false, translateStoreErr(err)
	}
	return stored, created, nil
}

// GetUser returns the profile together with today's score and the number of
// puzzles the user has solved.
func (s *UserService) GetUser(ctx context.Context, uid, today string) (*UserProfile, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	todayScore := 0
	rec, err := s.store.GetScore(ctx, uid, today)
	if err == nil {
		todayScore = rec.Score
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	solved, err := s.store.CountForUser(ctx, uid, false)
	if err != nil {
		return nil, err
	}

	return &UserProfile{User: user, TodayScore: todayScore, PuzzlesSolved: solved}, nil
}

// GetUserStats composes the profile with game counts, best score, success
// rate and the ten most recent scores.
func (s *UserService) GetUserStats(ctx context.Context, uid string) (*UserStats, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	total, err := s.store.CountForUser(ctx, uid, false)
	if err != nil {
		return nil, err
	}
	successful, err := s.store.CountForUser(ctx, uid, true)
	if err != nil {
		return nil, err
	}
	best, err := s.store.BestForUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.RecentForUser(ctx, uid, 10)
	if err != nil {
		return nil, err
	}

	successRate := 0.0
	if total > 0 {
		successRate = math.Round(float64(successful)/float64(total)*1000) / 10
	}

	name := user.DisplayName
	if name == "" {
		name = "Anonymous"
	}

	recentScores := make([]RecentScore, 0, len(recent))
	for _, rec := range recent {
		recentScores = append(recentScores, RecentScore{
			Score:     rec.Score,
			Date:      rec.Date,
			TimeTaken: rec.TimeTaken,
		})
	}

	return &UserStats{
		UserID:       uid,
		DisplayName:  name,
		Streak:       user.Streak,
		TotalPoints:  user.TotalPoints,
		TotalGames:   total,
		BestScore:    best,
		SuccessRate:  successRate,
		RecentScores: recentScores,
	}, nil
}
