package repository

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) FindByIDAndUser(userID, reportID uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.Where("id = ? AND user_id = ?", reportID, userID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListByUser(userID uint) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) ListAll(status string) ([]entity.Report, error) {
	q := r.db.Model(&entity.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reports []entity.Report
	err := q.Order("id DESC").Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) UpdateStatus(reportID uint, status string, adminID uint) error {
	return r.db.Model(&entity.Report{}).
		Where("id = ?", reportID).
		Updates(map[string]any{"status": status, "admin_id": adminID}).Error
}
