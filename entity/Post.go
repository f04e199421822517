package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Post is a client job listing freelancers can apply to.
type Post struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"index" json:"category"`

	BudgetMin decimal.Decimal `gorm:"type:decimal(12,2)" json:"budgetMin"`
	BudgetMax decimal.Decimal `gorm:"type:decimal(12,2)" json:"budgetMax"`

	Open bool `gorm:"not null;default:true" json:"open"`

	ClientID uint `gorm:"index" json:"clientId"`
	Client   User `json:"-"`

	Applications []Application `json:"-"`
}
