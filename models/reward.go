package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardRecord is a single credited ad-reward transaction. The transaction
// hash is unique, which makes reward crediting idempotent under retries.
type RewardRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID          string             `bson:"user_id" json:"user_id"`
	RewardType      string             `bson:"reward_type" json:"reward_type"`
	Amount          float64            `bson:"reward_amount" json:"reward_amount"`
	AdUnitID        string             `bson:"ad_unit_id,omitempty" json:"ad_unit_id,omitempty"`
	TransactionHash string             `bson:"transaction_hash" json:"transaction_hash"`
	ProcessedAt     time.Time          `bson:"processed_at" json:"processed_at"`
	Verified        bool               `bson:"is_verified" json:"is_verified"`
}

// RewardRequest is the request body for crediting an ad reward.
type RewardRequest struct {
	UserID       string  `json:"userId" binding:"required"`
	RewardType   string  `json:"rewardType" binding:"required"`
	RewardAmount float64 `json:"rewardAmount"`
	Timestamp    string  `json:"timestamp" binding:"required"`
	AdUnitID     string  `json:"adUnitId"`
}
