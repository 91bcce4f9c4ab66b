package models

import "time"

// Like is a membership association between an account and a post. The
// (user, post) pair carries a unique index: the service rejects redundant
// like/unlike transitions up front, and the index is the storage backstop
// that keeps concurrent duplicates out.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
