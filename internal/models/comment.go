package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a remark attached to a post. Comments have no update or delete
// path; they live and die with their post.
type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Body   string `gorm:"type:text;not null" json:"body"`
	UserID uint   `gorm:"not null" json:"user_id"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Post   Post   `gorm:"foreignKey:PostID" json:"-"`

	// Author is the outward projection of User, attached after a load.
	Author *AccountView `gorm:"-" json:"author,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AttachAuthor fills the outward author projection from the loaded User
// association.
func (c *Comment) AttachAuthor() {
	if c.User.ID != 0 {
		view := c.User.View()
		c.Author = &view
	}
}
