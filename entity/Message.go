package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Body string `json:"body"`

	SenderID uint `gorm:"index" json:"senderId"`
	Sender   User `json:"-"`

	RoomID uint     `gorm:"index" json:"roomId"`
	Room   ChatRoom `json:"-"` // hidden to avoid marshal loops
}
