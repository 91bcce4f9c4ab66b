package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a piece of content published by exactly one account. The
// author is fixed at creation and only the author may delete the post.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"-"`

	// Author is the outward projection of User, attached after a load.
	Author *AccountView `gorm:"-" json:"author,omitempty"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AttachAuthor fills the outward author projection from the loaded User
// association. Call after any query that preloads User.
func (p *Post) AttachAuthor() {
	if p.User.ID != 0 {
		view := p.User.View()
		p.Author = &view
	}
	for i := range p.Comments {
		p.Comments[i].AttachAuthor()
	}
}
