package entity

import (
	"gorm.io/gorm"
)

// ChatRoom connects the two parties of an order.
type ChatRoom struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	// preload messages only on the room detail endpoint
	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}
