// Package models defines the domain entities persisted by the application.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder. Handle and Email are unique across live
// accounts; Password always holds a bcrypt hash, never plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Handle   string `gorm:"column:user_name;unique;not null" json:"user_name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// Follow graph counts are not persisted; composed at read time.
	FollowerCount  int64 `gorm:"-" json:"follower_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AccountView is the outward projection of a User. It is built explicitly
// so the password hash can never reach a response by accident.
type AccountView struct {
	ID             uint      `json:"id"`
	UserName       string    `json:"userName"`
	Email          string    `json:"email"`
	FollowerCount  int64     `json:"followerCount"`
	FollowingCount int64     `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// View returns the outward projection of the user.
func (u *User) View() AccountView {
	return AccountView{
		ID:             u.ID,
		UserName:       u.Handle,
		Email:          u.Email,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt,
	}
}
