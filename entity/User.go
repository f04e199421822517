package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	University  string `json:"university"`
	Role        string `gorm:"not null;default:client" json:"role"` // client | freelancer | admin
	Active      bool   `gorm:"not null;default:true" json:"active"`

	// internal wallet, credited by admin payout
	WalletBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"walletBalance"`

	// relations, preload only when needed
	Gigs           []Gig         `gorm:"foreignKey:FreelancerID" json:"-"`
	OrdersAsClient []Order       `gorm:"foreignKey:ClientID" json:"-"`
	OrdersAsWorker []Order       `gorm:"foreignKey:FreelancerID" json:"-"`
	Posts          []Post        `gorm:"foreignKey:ClientID" json:"-"`
	Applications   []Application `gorm:"foreignKey:FreelancerID" json:"-"`
	Reviews        []Review      `gorm:"foreignKey:ClientID" json:"-"`
	MessagesSent   []Message     `gorm:"foreignKey:SenderID" json:"-"`
	Reports        []Report      `gorm:"foreignKey:UserID" json:"-"`
}
