package models

import "time"

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	SubjectID string `gorm:"uniqueIndex;size:128;not null"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;index"`
	Verified  bool   `gorm:"not null;default:false"`
	// Credits is mutated only by atomic UPDATE expressions, never by saving
	// this struct wholesale.
	Credits   int    `gorm:"not null;default:0"`
	Role      string `gorm:"size:20;not null;default:'member'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
