package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"dailybite/models"
)

// Memory is an in-process Store with the same semantics as the Mongo
// implementation. It backs the service tests so the core stays verifiable
// without a running database.
type Memory struct {
	mu      sync.Mutex
	users   map[string]*models.User
	scores  map[string]*memScore
	rewards map[string]models.RewardRecord
	seq     int
}

type memScore struct {
	rec models.ScoreRecord
	seq int // insertion order, stands in for created_at recency
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*models.User),
		scores:  make(map[string]*memScore),
		rewards: make(map[string]models.RewardRecord),
	}
}

func scoreKey(uid, date string) string { return uid + "|" + date }

func (m *Memory) GetUser(_ context.Context, uid string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[uid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *Memory) UpsertUser(_ context.Context, user models.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := m.users[user.UID]
	if !ok {
		created := models.User{
			UID:         user.UID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			IsAnonymous: user.IsAnonymous,
			CreatedAt:   now,
			LastActive:  now,
		}
		m.users[user.UID] = &created
		return true, nil
	}

	if user.DisplayName != "" {
		existing.DisplayName = user.DisplayName
	}
	if user.Email != "" {
		existing.Email = user.Email
	}
	existing.IsAnonymous = user.IsAnonymous
	existing.LastActive = now
	return false, nil
}

func (m *Memory) IncrementPoints(_ context.Context, uid string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[uid]
	if !ok {
		return 0, ErrNotFound
	}
	user.TotalPoints += delta
	return user.TotalPoints, nil
}

func (m *Memory) SetStreak(_ context.Context, uid string, streak int, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[uid]
	if !ok {
		return ErrNotFound
	}
	user.Streak = streak
	user.LastStreakDate = date
	user.LastActive = time.Now().UTC()
	return nil
}

func (m *Memory) GetScore(_ context.Context, uid, date string) (*models.ScoreRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.scores[scoreKey(uid, date)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := entry.rec
	return &cp, nil
}

func (m *Memory) UpsertBest(_ context.Context, rec models.ScoreRecord) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	key := scoreKey(rec.UserID, rec.Date)

	entry, ok := m.scores[key]
	if !ok {
		rec.CreatedAt = now
		m.seq++
		m.scores[key] = &memScore{rec: rec, seq: m.seq}
		return 0, true, nil
	}
	if rec.Score > entry.rec.Score {
		prev := entry.rec.Score
		entry.rec.Score = rec.Score
		entry.rec.TimeTaken = rec.TimeTaken
		entry.rec.UpdatedAt = now
		return prev, true, nil
	}
	return entry.rec.Score, false, nil
}

func (m *Memory) TopForDate(_ context.Context, date string, limit int) ([]models.ScoreRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var recs []models.ScoreRecord
	for _, entry := range m.scores {
		if entry.rec.Date == date {
			recs = append(recs, entry.rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].TimeTaken < recs[j].TimeTaken
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (m *Memory) AllTime(_ context.Context, limit int) ([]AllTimeRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	grouped := make(map[string]*AllTimeRow)
	for _, entry := range m.scores {
		row, ok := grouped[entry.rec.UserID]
		if !ok {
			row = &AllTimeRow{UserID: entry.rec.UserID}
			grouped[entry.rec.UserID] = row
		}
		row.TotalScore += entry.rec.Score
		if entry.rec.Score > row.BestScore {
			row.BestScore = entry.rec.Score
		}
		row.GamesPlayed++
	}

	rows := make([]AllTimeRow, 0, len(grouped))
	for _, row := range grouped {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalScore != rows[j].TotalScore {
			return rows[i].TotalScore > rows[j].TotalScore
		}
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		return rows[i].UserID < rows[j].UserID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *Memory) CountForUser(_ context.Context, uid string, positiveOnly bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, entry := range m.scores {
		if entry.rec.UserID != uid {
			continue
		}
		if positiveOnly && entry.rec.Score <= 0 {
			continue
		}
		count++
	}
	return count, nil
}

func (m *Memory) BestForUser(_ context.Context, uid string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := 0
	for _, entry := range m.scores {
		if entry.rec.UserID == uid && entry.rec.Score > best {
			best = entry.rec.Score
		}
	}
	return best, nil
}

func (m *Memory) RecentForUser(_ context.Context, uid string, limit int) ([]models.ScoreRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []*memScore
	for _, entry := range m.scores {
		if entry.rec.UserID == uid {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	recs := make([]models.ScoreRecord, 0, len(entries))
	for _, entry := range entries {
		recs = append(recs, entry.rec)
	}
	return recs, nil
}

func (m *Memory) GetReward(_ context.Context, transactionHash string) (*models.RewardRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.rewards[transactionHash]
	if !ok {
		return nil, ErrNotFound
	}
	cp := rec
	return &cp, nil
}

func (m *Memory) InsertReward(_ context.Context, rec models.RewardRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rewards[rec.TransactionHash]; ok {
		return ErrDuplicate
	}
	m.rewards[rec.TransactionHash] = rec
	return nil
}
