package models

import "time"

type SubscriptionModel struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"uniqueIndex;not null"`
	Plan             string `gorm:"size:20;not null"`
	Status           string `gorm:"size:20;not null;index"`
	CurrentPeriodEnd *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
