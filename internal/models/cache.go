package models

import "time"

// Difficulty bounds for a cache, inclusive.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// DefaultCategory is applied when a cache is created without a category.
const DefaultCategory = "general"

// Cache is a geotagged point of interest owned by its creator. Deleting a
// cache removes its log entries and likes.
type Cache struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:120;index;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	Difficulty  int       `gorm:"not null;default:1" json:"difficulty"`
	Category    string    `gorm:"size:50;not null;default:general" json:"category"`
	CreatorID   uint      `gorm:"index;not null" json:"creator_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	Creator *User       `gorm:"foreignKey:CreatorID" json:"-"`
	Logs    []LogEntry  `gorm:"foreignKey:CacheID;constraint:OnDelete:CASCADE" json:"-"`
	Likes   []CacheLike `gorm:"foreignKey:CacheID;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidDifficulty reports whether d falls within the accepted range.
func ValidDifficulty(d int) bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}
