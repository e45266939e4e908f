package models

import "time"

// Reaction records a user's like (Kind=true) or dislike (Kind=false) on a
// post. The (UserID, PostID) pair is unique; all writes go through an upsert
// keyed on that index, so at most one row exists per pair at all times.
// There is no operation that removes a reaction short of deleting the post.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reaction_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_reaction_user_post" json:"post_id"`
	Kind      bool      `gorm:"not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
