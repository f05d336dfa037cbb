package models

import "time"

// User is an identity record. Password holds a bcrypt hash and is never serialised.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	DisplayName string    `gorm:"size:100" json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`

	Caches []Cache    `gorm:"foreignKey:CreatorID" json:"-"`
	Logs   []LogEntry `gorm:"foreignKey:UserID" json:"-"`
	Likes  []CacheLike `gorm:"foreignKey:UserID" json:"-"`
}
