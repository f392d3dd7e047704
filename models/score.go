package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoreRecord is the best score one user posted on one calendar day.
// (user_id, date) is unique; the stored score only ever moves upward.
type ScoreRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Date       string             `bson:"date" json:"date"`
	Score      int                `bson:"score" json:"score"`
	TimeTaken  int                `bson:"time_taken" json:"time_taken"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Difficulty string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ScoreSubmission is the request body for submitting a puzzle score.
type ScoreSubmission struct {
	UserID     string `json:"userId" binding:"required"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"timeTaken"`
	Date       string `json:"date" binding:"required"`
	Category   string `json:"puzzle_category"`
	Difficulty string `json:"puzzle_difficulty"`
}
