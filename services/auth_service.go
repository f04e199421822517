package services

import (
	"strings"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/pkg/apperr"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/repository"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new account. Role is restricted to the two
// self-service roles; admins are seeded, never registered.
func (s *AuthService) Register(email, password, firstName, lastName, phone, university, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if role != entity.RoleClient && role != entity.RoleFreelancer {
		return nil, apperr.Validation("role must be client or freelancer")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		University:  strings.TrimSpace(university),
		Role:        role,
		Active:      true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Forbidden("invalid credentials")
	}
	if !user.Active {
		return "", nil, apperr.Forbidden("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Forbidden("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile lets a user change the mutable profile fields.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"first_name": true, "last_name": true,
		"phone_number": true, "university": true,
	}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, apperr.Validation("nothing to update")
	}
	if err := s.userRepo.Update(userID, filtered); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
