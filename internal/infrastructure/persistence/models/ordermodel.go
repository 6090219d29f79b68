package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNo     string `gorm:"uniqueIndex;size:64;not null"`
	UserID      uint   `gorm:"index;not null"`
	Amount      int64  `gorm:"not null"`
	Currency    string `gorm:"size:10;not null;default:'INR'"`
	Description string `gorm:"size:255;not null"`
	// Intent is the structured purchase payload; settlement dispatches on it,
	// never on the description text.
	Intent       datatypes.JSON `gorm:"not null"`
	Status       string         `gorm:"size:20;not null;index"`
	GatewayTxnID *string        `gorm:"size:128"`
	CallbackRaw  datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
