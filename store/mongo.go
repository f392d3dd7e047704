package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dailybite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection   = "users"
	scoresCollection  = "scores"
	rewardsCollection = "rewards"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*Mongo)(nil)

// ConnectMongo establishes a connection to MongoDB and verifies it with a ping.
func ConnectMongo(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the uniqueness constraints the write paths rely on,
// plus the leaderboard read index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := m.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = m.db.Collection(scoresCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "score", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("scores indexes: %w", err)
	}

	_, err = m.db.Collection(rewardsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transaction_hash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("rewards indexes: %w", err)
	}
	return nil
}

func (m *Mongo) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := m.db.Collection(usersCollection).FindOne(ctx, bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) UpsertUser(ctx context.Context, user models.User) (bool, error) {
	now := time.Now().UTC()

	set := bson.M{
		"is_anonymous": user.IsAnonymous,
		"last_active":  now,
	}
	if user.DisplayName != "" {
		set["display_name"] = user.DisplayName
	}
	if user.Email != "" {
		set["email"] = user.Email
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"uid":          user.UID,
			"streak":       0,
			"total_points": 0,
			"created_at":   now,
		},
	}

	res, err := m.db.Collection(usersCollection).UpdateOne(
		ctx, bson.M{"uid": user.UID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (m *Mongo) IncrementPoints(ctx context.Context, uid string, delta int) (int, error) {
	res := m.db.Collection(usersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"uid": uid},
		bson.M{"$inc": bson.M{"total_points": delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := res.Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return user.TotalPoints, nil
}

func (m *Mongo) SetStreak(ctx context.Context, uid string, streak int, date string) error {
	res, err := m.db.Collection(usersCollection).UpdateOne(
		ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{
			"streak":           streak,
			"last_streak_date": date,
			"last_active":      time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) GetScore(ctx context.Context, uid, date string) (*models.ScoreRecord, error) {
	var rec models.ScoreRecord
	err := m.db.Collection(scoresCollection).
		FindOne(ctx, bson.M{"user_id": uid, "date": date}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (m *Mongo) UpsertBest(ctx context.Context, rec models.ScoreRecord) (int, bool, error) {
	coll := m.db.Collection(scoresCollection)

	// Two passes are enough: a lost race on either branch lands on the other
	// branch the second time around.
	for attempt := 0; attempt < 2; attempt++ {
		// Beat an existing lower score in place. The score guard in the
		// filter serializes concurrent submissions so the stored value ends
		// as the true maximum.
		res := coll.FindOneAndUpdate(
			ctx,
			bson.M{"user_id": rec.UserID, "date": rec.Date, "score": bson.M{"$lt": rec.Score}},
			bson.M{"$set": bson.M{
				"score":      rec.Score,
				"time_taken": rec.TimeTaken,
				"updated_at": time.Now().UTC(),
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.Before),
		)

		var prev models.ScoreRecord
		err := res.Decode(&prev)
		if err == nil {
			return prev.Score, true, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, err
		}

		// Nothing beatable: either the key is absent or the stored score
		// already matches or exceeds this submission.
		existing, err := m.GetScore(ctx, rec.UserID, rec.Date)
		if err == nil {
			if existing.Score >= rec.Score {
				return existing.Score, false, nil
			}
			continue // a lower score slipped in between, retry the update
		}
		if !errors.Is(err, ErrNotFound) {
			return 0, false, err
		}

		rec.CreatedAt = time.Now().UTC()
		if _, err := coll.InsertOne(ctx, rec); err == nil {
			return 0, true, nil
		} else if !mongo.IsDuplicateKeyError(err) {
			return 0, false, err
		}
		// a concurrent insert won the unique index, loop back to the update
	}
	return 0, false, fmt.Errorf("score upsert for %s/%s did not converge", rec.UserID, rec.Date)
}

func (m *Mongo) TopForDate(ctx context.Context, date string, limit int) ([]models.ScoreRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "time_taken", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := m.db.Collection(scoresCollection).Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.ScoreRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (m *Mongo) AllTime(ctx context.Context, limit int) ([]AllTimeRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "total_score", Value: bson.D{{Key: "$sum", Value: "$score"}}},
			{Key: "best_score", Value: bson.D{{Key: "$max", Value: "$score"}}},
			{Key: "games_played", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "total_score", Value: -1},
			{Key: "best_score", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: int64(limit)}},
	}

	cursor, err := m.db.Collection(scoresCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []AllTimeRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *Mongo) CountForUser(ctx context.Context, uid string, positiveOnly bool) (int64, error) {
	filter := bson.M{"user_id": uid}
	if positiveOnly {
		filter["score"] = bson.M{"$gt": 0}
	}
	return m.db.Collection(scoresCollection).CountDocuments(ctx, filter)
}

func (m *Mongo) BestForUser(ctx context.Context, uid string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "score", Value: -1}})

	var rec models.ScoreRecord
	err := m.db.Collection(scoresCollection).FindOne(ctx, bson.M{"user_id": uid}, opts).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return rec.Score, nil
}

func (m *Mongo) RecentForUser(ctx context.Context, uid string, limit int) ([]models.ScoreRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := m.db.Collection(scoresCollection).Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.ScoreRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (m *Mongo) GetReward(ctx context.Context, transactionHash string) (*models.RewardRecord, error) {
	var rec models.RewardRecord
	err := m.db.Collection(rewardsCollection).
		FindOne(ctx, bson.M{"transaction_hash": transactionHash}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (m *Mongo) InsertReward(ctx context.Context, rec models.RewardRecord) error {
	_, err := m.db.Collection(rewardsCollection).InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
