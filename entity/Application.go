package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is a freelancer proposal on a job post.
type Application struct {
	gorm.Model
	CoverLetter    string          `json:"coverLetter"`
	ProposedAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"proposedAmount"`
	Status         string          `gorm:"not null;default:pending" json:"status"`

	PostID uint `gorm:"index:idx_post_freelancer,unique" json:"postId"`
	Post   Post `json:"-"`

	FreelancerID uint `gorm:"index:idx_post_freelancer,unique" json:"freelancerId"`
	Freelancer   User `json:"-"`
}
