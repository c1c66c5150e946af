package model

import "time"

type User struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Username      string     `json:"username" gorm:"size:30;uniqueIndex;not null"`
	Email         string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password      string     `json:"-" gorm:"not null"`
	Role          string     `json:"role" gorm:"size:20;not null;index"`
	IsActive      bool       `json:"isActive" gorm:"not null;index"`
	LoginAttempts int        `json:"-" gorm:"not null;default:0"`
	LockUntil     *time.Time `json:"-"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IsLocked is derived on every call, never stored.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// UserSummary is the public projection of a user referenced from other records.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

func (UserSummary) TableName() string {
	return "users"
}
