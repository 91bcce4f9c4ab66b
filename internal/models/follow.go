package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Follow is a directed edge in the follow graph: Follower follows Followee.
// The (follower, followee) pair carries a unique index so at most one edge
// exists per ordered pair, and self-edges are rejected before insert.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"-"`
}

// TableName overrides the default table name.
func (Follow) TableName() string {
	return "user_follows"
}

// BeforeCreate rejects self-edges at the storage boundary.
func (f *Follow) BeforeCreate(_ *gorm.DB) error {
	if f.FollowerID == f.FolloweeID {
		return errors.New("follow edge cannot reference itself")
	}
	return nil
}
