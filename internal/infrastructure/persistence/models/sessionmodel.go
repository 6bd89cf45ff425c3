package models

import "time"

// SessionModel is the GORM model for per-account sessions. The account
// identifier is the primary key; at most one row exists per account.
type SessionModel struct {
	AccountID string    `gorm:"primarykey;size:255"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for SessionModel
func (SessionModel) TableName() string {
	return "sessions"
}
