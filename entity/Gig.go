package entity

import (
	"gorm.io/gorm"
)

type Gig struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"index" json:"category"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	AvgRating   float64 `gorm:"not null;default:0" json:"avgRating"`
	RatingCount int     `gorm:"not null;default:0" json:"ratingCount"`

	FreelancerID uint `gorm:"index" json:"freelancerId"`
	Freelancer   User `json:"-"` // preload only for gig detail

	Packages []GigPackage `json:"packages"`
	Orders   []Order      `gorm:"foreignKey:GigID" json:"-"`
	Reviews  []Review     `gorm:"foreignKey:GigID" json:"-"`
}
