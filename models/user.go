package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity. Exactly one document exists per UID; the bson
// field names match the documents the mobile clients were launched against.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID            string             `bson:"uid" json:"uid"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	DisplayName    string             `bson:"display_name,omitempty" json:"display_name,omitempty"`
	IsAnonymous    bool               `bson:"is_anonymous" json:"is_anonymous"`
	Streak         int                `bson:"streak" json:"streak"`
	TotalPoints    int                `bson:"total_points" json:"total_points"`
	LastStreakDate string             `bson:"last_streak_date,omitempty" json:"last_streak_date,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	LastActive     time.Time          `bson:"last_active" json:"last_active"`
}
