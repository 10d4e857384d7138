package models

import "time"

// Like marks one user having liked one post. The (UserID, PostID) pair is
// unique; likes are hard-deleted so a removed like never blocks a re-like.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"-"`
	CreatedAt time.Time `json:"-"`
}
