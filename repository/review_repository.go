package repository

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewRepository) ListForGig(gigID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Where("gig_id = ?", gigID).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}
