package models

import (
	"time"

	"gorm.io/datatypes"
)

// GenerationRecordModel rows are insert-only.
type GenerationRecordModel struct {
	ID           uint           `gorm:"primaryKey"`
	SID          string         `gorm:"column:sid;uniqueIndex;size:64;not null"`
	UserID       uint           `gorm:"index:idx_generation_records_user_created;not null"`
	Theme        string         `gorm:"size:255;not null"`
	Style        string         `gorm:"size:32;not null"`
	OriginalData string         `gorm:"type:longtext;not null"`
	OriginalMime string         `gorm:"size:64;not null"`
	Images       datatypes.JSON `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"index:idx_generation_records_user_created"`
}

func (GenerationRecordModel) TableName() string {
	return "generation_records"
}
