package repository

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/gorm"
)

type GigRepository struct {
	DB *gorm.DB
}

func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{DB: db}
}

func (r *GigRepository) Create(gig *entity.Gig) error {
	return r.DB.Create(gig).Error
}

func (r *GigRepository) FindByID(id uint) (*entity.Gig, error) {
	var gig entity.Gig
	if err := r.DB.Preload("Packages").First(&gig, id).Error; err != nil {
		return nil, err
	}
	return &gig, nil
}

// FindPackage loads one tier of a gig.
func (r *GigRepository) FindPackage(gigID uint, tier entity.PackageTier) (*entity.GigPackage, error) {
	var pkg entity.GigPackage
	if err := r.DB.Where("gig_id = ? AND tier = ?", gigID, tier).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *GigRepository) List(category string, activeOnly bool, page, limit int) ([]entity.Gig, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Gig{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gigs []entity.Gig
	err := q.Preload("Packages").
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&gigs).Error
	return gigs, total, err
}

func (r *GigRepository) ListByFreelancer(freelancerID uint) ([]entity.Gig, error) {
	var gigs []entity.Gig
	err := r.DB.Preload("Packages").
		Where("freelancer_id = ?", freelancerID).
		Order("id DESC").Find(&gigs).Error
	return gigs, err
}

func (r *GigRepository) Update(gigID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Gig{}).Where("id = ?", gigID).Updates(updates).Error
}

func (r *GigRepository) SavePackage(pkg *entity.GigPackage) error {
	return r.DB.Save(pkg).Error
}

// UpdateRating recomputes the gig's average from its reviews, inside tx.
func (r *GigRepository) UpdateRating(tx *gorm.DB, gigID uint) error {
	var agg struct {
		Avg   float64
		Count int
	}
	if err := tx.Model(&entity.Review{}).
		Where("gig_id = ?", gigID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&agg).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Gig{}).Where("id = ?", gigID).
		Updates(map[string]any{"avg_rating": agg.Avg, "rating_count": agg.Count}).Error
}
