package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LeaderboardLimit caps the number of returned entries.
const LeaderboardLimit = 20

// LeaderboardEntry is one row of the find-count ranking.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Finds    int64  `json:"finds"`
}

// LeaderboardService computes the find-count ranking.
type LeaderboardService struct {
	db *gorm.DB
}

// NewLeaderboardService constructs a leaderboard service.
func NewLeaderboardService(db *gorm.DB) (*LeaderboardService, error) {
	if db == nil {
		return nil, errors.New("leaderboard service: db is required")
	}
	return &LeaderboardService{db: db}, nil
}

// Top returns up to LeaderboardLimit users ordered by find count descending.
// Users with zero finds are included via the outer join. Ties break by
// username ascending so the ordering is deterministic across engines.
func (s *LeaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx = ensureContext(ctx)

	var entries []LeaderboardEntry
	err := s.db.WithContext(ctx).
		Table("users").
		Select("users.username AS username, COUNT(log_entries.id) AS finds").
		Joins("LEFT JOIN log_entries ON log_entries.user_id = users.id").
		Group("users.id, users.username").
		Order("COUNT(log_entries.id) DESC, users.username ASC").
		Limit(LeaderboardLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("leaderboard service: aggregate finds: %w", err)
	}
	return entries, nil
}
