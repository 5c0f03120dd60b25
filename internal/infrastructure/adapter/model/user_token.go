package model

import (
	"time"
)

// UserToken represents the database model for issued access tokens.
// Each user holds at most one row.
type UserToken struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	Token     string    `gorm:"not null;size:512"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for UserToken
func (UserToken) TableName() string {
	return "user_tokens"
}
