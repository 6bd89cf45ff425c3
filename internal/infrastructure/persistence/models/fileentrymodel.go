package models

import "time"

// FileEntryModel is the GORM model for file registry entries.
type FileEntryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	Locator   string `gorm:"size:1024;not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for FileEntryModel
func (FileEntryModel) TableName() string {
	return "file_entries"
}
