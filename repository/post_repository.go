package repository

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *entity.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*entity.Post, error) {
	var post entity.Post
	if err := r.DB.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) ListOpen(category string, page, limit int) ([]entity.Post, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Post{}).Where("open = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []entity.Post
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) ListByClient(clientID uint) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.DB.Where("client_id = ?", clientID).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Update(postID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Post{}).Where("id = ?", postID).Updates(updates).Error
}

// ---------------- Applications ----------------

func (r *PostRepository) CreateApplication(app *entity.Application) error {
	return r.DB.Create(app).Error
}

func (r *PostRepository) FindApplication(id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *PostRepository) ApplicationExists(postID, freelancerID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Application{}).
		Where("post_id = ? AND freelancer_id = ?", postID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) ListApplications(postID uint) ([]entity.Application, error) {
	var apps []entity.Application
	err := r.DB.Where("post_id = ?", postID).Order("id DESC").Find(&apps).Error
	return apps, err
}

func (r *PostRepository) UpdateApplicationStatus(appID uint, status string) error {
	return r.DB.Model(&entity.Application{}).Where("id = ?", appID).
		Update("status", status).Error
}
