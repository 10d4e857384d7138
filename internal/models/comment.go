package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a user-authored reply embedded in a post's response payload.
// Its identity is generated on insertion and is the key used for removal.
// Name and Avatar are author snapshots, same tradeoff as on Post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"not null;index" json:"user"`
	PostID    uint           `gorm:"not null;index" json:"-"`
	CreatedAt time.Time      `json:"date"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
