package models

import "time"

// Wallet holds a user's platform balance in minor units. One row per user.
type Wallet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Balance   int64     `gorm:"default:0" json:"balance"`
	Currency  string    `gorm:"type:varchar(3);default:'NGN'" json:"currency"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
