package models

import "time"

// CacheLike is an explicit join entity marking that a user likes a cache.
// Like and unlike are idempotent operations, never a toggle.
type CacheLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_cache" json:"user_id"`
	CacheID   uint      `gorm:"not null;uniqueIndex:idx_like_user_cache" json:"cache_id"`
	CreatedAt time.Time `json:"created_at"`
}
