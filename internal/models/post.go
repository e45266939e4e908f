package models

import "time"

// Post is owned exclusively by the creating user; only the owner may update
// or delete it. Rows are hard-deleted so a cascade leaves nothing behind.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// DislikesCount is not persisted; computed at query time
	DislikesCount int       `gorm:"->" json:"dislikes_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
