package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportPending    = "pending"
	ReportInProgress = "in_progress"
	ReportResolved   = "resolved"
	ReportClosed     = "closed"
)

// Report is a user-filed issue handled by staff.
type Report struct {
	gorm.Model
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	IssueType   string     `json:"issueType"`
	Status      string     `gorm:"not null;default:pending" json:"status"`
	DateAt      *time.Time `json:"dateAt,omitempty"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	AdminID *uint `json:"adminId,omitempty"`
	Admin   *User `gorm:"foreignKey:AdminID" json:"-"`

	// only an order or gig may be referenced, both optional
	OrderID *uint `json:"orderId,omitempty"`
	GigID   *uint `json:"gigId,omitempty"`
}
