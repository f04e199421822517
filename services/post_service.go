package services

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/shopspring/decimal"
)

type PostService struct {
	Repo *repository.PostRepository
}

func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{Repo: repo}
}

// ----- DTOs -----

type CreatePostReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BudgetMin   decimal.Decimal `json:"budgetMin"`
	BudgetMax   decimal.Decimal `json:"budgetMax"`
}

type ApplyReq struct {
	CoverLetter    string          `json:"coverLetter" binding:"required"`
	ProposedAmount decimal.Decimal `json:"proposedAmount"`
}

type PostListOut struct {
	Items []entity.Post `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *PostService) Create(clientID uint, req *CreatePostReq) (*entity.Post, error) {
	if req.BudgetMax.LessThan(req.BudgetMin) {
		return nil, apperr.Validation("budgetMax must not be below budgetMin")
	}

	post := &entity.Post{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		BudgetMin:   req.BudgetMin.Round(2),
		BudgetMax:   req.BudgetMax.Round(2),
		Open:        true,
		ClientID:    clientID,
	}
	if err := s.Repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListOpen(category string, page, limit int) (*PostListOut, error) {
	posts, total, err := s.Repo.ListOpen(category, page, limit)
	if err != nil {
		return nil, err
	}
	return &PostListOut{Items: posts, Total: total, Page: page, Limit: limit}, nil
}

func (s *PostService) ListMine(clientID uint) ([]entity.Post, error) {
	return s.Repo.ListByClient(clientID)
}

func (s *PostService) Close(clientID, postID uint) error {
	post, err := s.Repo.FindByID(postID)
	if err != nil {
		return apperr.NotFound("post not found")
	}
	if post.ClientID != clientID {
		return apperr.Forbidden("not your post")
	}
	return s.Repo.Update(postID, map[string]any{"open": false})
}

// Apply records a freelancer proposal, one per post per freelancer.
func (s *PostService) Apply(freelancerID, postID uint, req *ApplyReq) (*entity.Application, error) {
	post, err := s.Repo.FindByID(postID)
	if err != nil {
		return nil, apperr.NotFound("post not found")
	}
	if !post.Open {
		return nil, apperr.InvalidState("post is closed")
	}
	if post.ClientID == freelancerID {
		return nil, apperr.InvalidState("cannot apply to your own post")
	}

	exists, err := s.Repo.ApplicationExists(postID, freelancerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.InvalidState("already applied to this post")
	}

	app := &entity.Application{
		CoverLetter:    req.CoverLetter,
		ProposedAmount: req.ProposedAmount.Round(2),
		Status:         entity.ApplicationPending,
		PostID:         postID,
		FreelancerID:   freelancerID,
	}
	if err := s.Repo.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *PostService) ListApplications(clientID, postID uint) ([]entity.Application, error) {
	post, err := s.Repo.FindByID(postID)
	if err != nil {
		return nil, apperr.NotFound("post not found")
	}
	if post.ClientID != clientID {
		return nil, apperr.Forbidden("not your post")
	}
	return s.Repo.ListApplications(postID)
}

// Decide accepts or rejects one application on the client's post.
func (s *PostService) Decide(clientID, appID uint, accept bool) (*entity.Application, error) {
	app, err := s.Repo.FindApplication(appID)
	if err != nil {
		return nil, apperr.NotFound("application not found")
	}
	post, err := s.Repo.FindByID(app.PostID)
	if err != nil {
		return nil, apperr.NotFound("post not found")
	}
	if post.ClientID != clientID {
		return nil, apperr.Forbidden("not your post")
	}
	if app.Status != entity.ApplicationPending {
		return nil, apperr.InvalidState("application already decided")
	}

	status := entity.ApplicationRejected
	if accept {
		status = entity.ApplicationAccepted
	}
	if err := s.Repo.UpdateApplicationStatus(appID, status); err != nil {
		return nil, err
	}
	return s.Repo.FindApplication(appID)
}
