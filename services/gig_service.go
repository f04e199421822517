package services

import (
	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"

	"github.com/shopspring/decimal"
)

type GigService struct {
	Repo       *repository.GigRepository
	ReviewRepo *repository.ReviewRepository
}

func NewGigService(repo *repository.GigRepository, reviewRepo *repository.ReviewRepository) *GigService {
	return &GigService{Repo: repo, ReviewRepo: reviewRepo}
}

// ----- DTOs -----

type PackageIn struct {
	Tier         entity.PackageTier `json:"tier" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	Price        decimal.Decimal    `json:"price" binding:"required"`
	Description  string             `json:"description"`
	Features     []string           `json:"features"`
	DeliveryDays int                `json:"deliveryDays"`
	Revisions    int                `json:"revisions"`
}

type CreateGigReq struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Packages    []PackageIn `json:"packages" binding:"required"`
}

type GigListOut struct {
	Items []entity.Gig `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// Create validates the package set and persists the gig with its tiers.
func (s *GigService) Create(freelancerID uint, req *CreateGigReq) (*entity.Gig, error) {
	if len(req.Packages) == 0 {
		return nil, apperr.Validation("at least one package is required")
	}
	seen := map[entity.PackageTier]bool{}
	for _, p := range req.Packages {
		if !p.Tier.Valid() {
			return nil, apperr.Validation("unknown package tier")
		}
		if seen[p.Tier] {
			return nil, apperr.Validation("duplicate package tier")
		}
		if p.Price.IsNegative() || p.Price.IsZero() {
			return nil, apperr.Validation("package price must be positive")
		}
		seen[p.Tier] = true
	}

	gig := &entity.Gig{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Active:       true,
		FreelancerID: freelancerID,
	}
	for _, p := range req.Packages {
		gig.Packages = append(gig.Packages, entity.GigPackage{
			Tier:         p.Tier,
			Name:         p.Name,
			Price:        p.Price.Round(2),
			Description:  p.Description,
			Features:     p.Features,
			DeliveryDays: p.DeliveryDays,
			Revisions:    p.Revisions,
		})
	}

	if err := s.Repo.Create(gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *GigService) List(category string, page, limit int) (*GigListOut, error) {
	gigs, total, err := s.Repo.List(category, true, page, limit)
	if err != nil {
		return nil, err
	}
	return &GigListOut{Items: gigs, Total: total, Page: page, Limit: limit}, nil
}

func (s *GigService) Detail(id uint) (*entity.Gig, error) {
	gig, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}
	return gig, nil
}

func (s *GigService) ListMine(freelancerID uint) ([]entity.Gig, error) {
	return s.Repo.ListByFreelancer(freelancerID)
}

// Update applies owner edits. Historical orders keep their snapshots, so
// price and description changes never rewrite past transactions.
func (s *GigService) Update(freelancerID, gigID uint, updates map[string]any) (*entity.Gig, error) {
	gig, err := s.Repo.FindByID(gigID)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}
	if gig.FreelancerID != freelancerID {
		return nil, apperr.Forbidden("not your service")
	}

	allowed := map[string]bool{"title": true, "description": true, "category": true, "active": true}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.Validation("nothing to update")
	}

	if err := s.Repo.Update(gigID, filtered); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(gigID)
}

// UpsertPackage replaces one tier for an owned gig.
func (s *GigService) UpsertPackage(freelancerID, gigID uint, in *PackageIn) (*entity.GigPackage, error) {
	gig, err := s.Repo.FindByID(gigID)
	if err != nil {
		return nil, apperr.NotFound("service not found")
	}
	if gig.FreelancerID != freelancerID {
		return nil, apperr.Forbidden("not your service")
	}
	if !in.Tier.Valid() {
		return nil, apperr.Validation("unknown package tier")
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return nil, apperr.Validation("package price must be positive")
	}

	pkg, err := s.Repo.FindPackage(gigID, in.Tier)
	if err != nil {
		pkg = &entity.GigPackage{GigID: gigID, Tier: in.Tier}
	}
	pkg.Name = in.Name
	pkg.Price = in.Price.Round(2)
	pkg.Description = in.Description
	pkg.Features = in.Features
	pkg.DeliveryDays = in.DeliveryDays
	pkg.Revisions = in.Revisions

	if err := s.Repo.SavePackage(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *GigService) Reviews(gigID uint, limit, offset int) ([]entity.Review, error) {
	if _, err := s.Repo.FindByID(gigID); err != nil {
		return nil, apperr.NotFound("service not found")
	}
	return s.ReviewRepo.ListForGig(gigID, limit, offset)
}
