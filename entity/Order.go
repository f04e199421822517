package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PackageSnapshot is the package as it looked at order time. Later edits to
// the gig listing must not alter historical orders.
type PackageSnapshot struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Description  string          `json:"description"`
	Features     StringList      `gorm:"type:text" json:"features"`
	DeliveryDays int             `json:"deliveryDays"`
	Revisions    int             `json:"revisions"`
}

// PaymentDetails is written once, at payout time. PaidAt doubles as the
// double-payout guard.
type PaymentDetails struct {
	FreelancerAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"freelancerAmount"`
	PlatformFee      decimal.Decimal `gorm:"type:decimal(12,2)" json:"platformFee"`
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	TransactionID    string          `json:"transactionId,omitempty"`
}

type Order struct {
	gorm.Model

	ClientID uint `gorm:"index" json:"clientId"`
	Client   User `json:"-"`

	FreelancerID uint `gorm:"index" json:"freelancerId"`
	Freelancer   User `json:"-"`

	GigID uint `gorm:"index" json:"gigId"`
	Gig   Gig  `json:"-"`

	SelectedPackage PackageTier     `gorm:"not null" json:"selectedPackage"`
	PackageDetails  PackageSnapshot `gorm:"embedded;embeddedPrefix:package_" json:"packageDetails"`

	// package price plus the flat 10% platform fee, rounded to cents
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`

	Status           OrderStatus      `gorm:"not null;default:Pending" json:"status"`
	ClientStatus     ClientStatus     `gorm:"not null;default:Pending" json:"clientStatus"`
	FreelancerStatus FreelancerStatus `gorm:"not null;default:Pending" json:"freelancerStatus"`
	PaymentStatus    PaymentStatus    `gorm:"not null;default:Pending" json:"paymentStatus"`

	CheckoutSessionID string `gorm:"index" json:"checkoutSessionId,omitempty"`

	PaymentDetails PaymentDetails `gorm:"embedded;embeddedPrefix:payout_" json:"paymentDetails"`

	ReviewSubmitted bool    `gorm:"not null;default:false" json:"reviewSubmitted"`
	Review          *Review `gorm:"foreignKey:OrderID" json:"review,omitempty"`

	ChatRoom *ChatRoom `gorm:"foreignKey:OrderID" json:"-"`
}
