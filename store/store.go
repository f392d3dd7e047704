// Package store defines the persistence contract the scoring core depends on
// and its MongoDB and in-memory implementations. The contract is deliberately
// small: conditional upserts, atomic increments and unique inserts are the
// only synchronization primitives the services use.
package store

import (
	"context"
	"errors"

	"dailybite/models"
)

var (
	// ErrNotFound means the requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate means a unique key constraint rejected an insert.
	ErrDuplicate = errors.New("duplicate key")
)

// AllTimeRow is one grouped aggregation result over the scores collection.
type AllTimeRow struct {
	UserID      string `bson:"_id"`
	TotalScore  int    `bson:"total_score"`
	BestScore   int    `bson:"best_score"`
	GamesPlayed int    `bson:"games_played"`
}

// UserStore persists user documents, keyed by uid.
type UserStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	// UpsertUser creates the user on first contact and refreshes provided
	// display fields plus last_active on every subsequent one.
	UpsertUser(ctx context.Context, user models.User) (created bool, err error)
	// IncrementPoints adjusts total_points relative to its current value and
	// returns the post-increment total. ErrNotFound if the user is absent.
	IncrementPoints(ctx context.Context, uid string, delta int) (newTotal int, err error)
	// SetStreak writes the streak counter and last streak date, bumping
	// last_active. ErrNotFound if the user is absent.
	SetStreak(ctx context.Context, uid string, streak int, date string) error
}

// ScoreStore persists daily score records, keyed by (user_id, date).
type ScoreStore interface {
	GetScore(ctx context.Context, uid, date string) (*models.ScoreRecord, error)
	// UpsertBest writes rec only if it beats the stored score for its key.
	// prev is the score it replaced (0 on first insert). Concurrent calls for
	// the same key serialize so the stored score ends as the true maximum.
	UpsertBest(ctx context.Context, rec models.ScoreRecord) (prev int, applied bool, err error)
	// TopForDate returns records for one date, score descending with ties
	// broken by time_taken ascending, truncated to limit.
	TopForDate(ctx context.Context, date string, limit int) ([]models.ScoreRecord, error)
	// AllTime groups records by user: total, best and count, sorted by total
	// descending then best descending then user id, truncated to limit.
	AllTime(ctx context.Context, limit int) ([]AllTimeRow, error)
	// CountForUser counts a user's records, optionally only those with a
	// positive score.
	CountForUser(ctx context.Context, uid string, positiveOnly bool) (int64, error)
	// BestForUser returns the user's highest score ever, 0 if none.
	BestForUser(ctx context.Context, uid string) (int, error)
	// RecentForUser returns up to limit records, newest first.
	RecentForUser(ctx context.Context, uid string, limit int) ([]models.ScoreRecord, error)
}

// RewardStore persists credited reward transactions, keyed by hash.
type RewardStore interface {
	GetReward(ctx context.Context, transactionHash string) (*models.RewardRecord, error)
	// InsertReward adds a transaction record, ErrDuplicate if the hash was
	// already credited.
	InsertReward(ctx context.Context, rec models.RewardRecord) error
}

// Store bundles the collection-level contracts backed by one engine.
type Store interface {
	UserStore
	ScoreStore
	RewardStore
}
