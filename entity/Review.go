package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`

	ClientID uint `gorm:"index" json:"clientId"`
	Client   User `json:"-"`

	GigID uint `gorm:"index" json:"gigId"`
	Gig   Gig  `json:"-"`

	// one review per order
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`
}
