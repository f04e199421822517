package services

import (
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"
)

type ReportService struct {
	repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

type CreateReportReq struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	IssueType   string `json:"issueType"`
	OrderID     *uint  `json:"orderId,omitempty"`
	GigID       *uint  `json:"gigId,omitempty"`
}

func (s *ReportService) Create(userID uint, req *CreateReportReq) (*entity.Report, error) {
	now := time.Now()
	report := &entity.Report{
		Subject:     req.Subject,
		Description: req.Description,
		IssueType:   req.IssueType,
		Status:      entity.ReportPending,
		DateAt:      &now,
		UserID:      userID,
		OrderID:     req.OrderID,
		GigID:       req.GigID,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListForUser(userID uint) ([]entity.Report, error) {
	return s.repo.ListByUser(userID)
}

func (s *ReportService) DetailForUser(userID, reportID uint) (*entity.Report, error) {
	report, err := s.repo.FindByIDAndUser(userID, reportID)
	if err != nil {
		return nil, apperr.NotFound("report not found")
	}
	return report, nil
}

func (s *ReportService) ListAll(status string) ([]entity.Report, error) {
	return s.repo.ListAll(status)
}

var validReportStatuses = map[string]bool{
	entity.ReportPending:    true,
	entity.ReportInProgress: true,
	entity.ReportResolved:   true,
	entity.ReportClosed:     true,
}

// UpdateStatus moves a report through the staff workflow.
func (s *ReportService) UpdateStatus(adminID, reportID uint, status string) (*entity.Report, error) {
	if !validReportStatuses[status] {
		return nil, apperr.Validation("invalid report status")
	}
	if _, err := s.repo.FindByID(reportID); err != nil {
		return nil, apperr.NotFound("report not found")
	}
	if err := s.repo.UpdateStatus(reportID, status, adminID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(reportID)
}
