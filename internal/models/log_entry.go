package models

import "time"

// LogEntry records that a user found a cache. The (user, cache) pair is
// unique: a user may log a given cache at most once, enforced by the
// composite index so concurrent attempts resolve in the storage engine.
type LogEntry struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_find_user_cache" json:"user_id"`
	CacheID uint      `gorm:"not null;uniqueIndex:idx_find_user_cache" json:"cache_id"`
	Note    string    `gorm:"type:text" json:"note"`
	FoundAt time.Time `gorm:"autoCreateTime;index" json:"found_at"`
}
