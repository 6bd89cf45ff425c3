package models

import (
	"time"

	"gorm.io/datatypes"
)

// LicenseKeyModel is the GORM model for license keys.
type LicenseKeyModel struct {
	ID            uint           `gorm:"primarykey"`
	KeyID         string         `gorm:"uniqueIndex;size:64;not null"`
	Status        string         `gorm:"size:16;not null;default:unused;index"`
	DurationHours int            `gorm:"not null"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	RedeemedBy    *string        `gorm:"size:255"`
	RedeemedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for LicenseKeyModel
func (LicenseKeyModel) TableName() string {
	return "license_keys"
}
