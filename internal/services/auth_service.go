// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/config"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

// AuthService signs in three principal kinds against two credential stores:
// customers and admins live in users, vendors in vendor_accounts. The issued
// token's role claim decides which store a refresh goes back to.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=10,max=15"`
	Password string `json:"password" validate:"required,strong_password"`
}

type AuthResponse struct {
	User         *models.User          `json:"user,omitempty"`
	Vendor       *models.VendorAccount `json:"vendor,omitempty"`
	Role         string                `json:"role"`
	AccessToken  string                `json:"access_token"`
	RefreshToken string                `json:"refresh_token"`
	TokenType    string                `json:"token_type"`
	ExpiresIn    int                   `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) RegisterCustomer(req *RegisterCustomerRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.NewConflict("user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    email,
		Phone:    req.Phone,
		UserType: models.UserTypeCustomer,
		Status:   models.UserStatusActive,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueUserTokens(user)
}

// LoginUser authenticates customers and admins against the users table.
func (s *AuthService) LoginUser(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	user.LastLoginAt = &now
	s.db.Model(&user).Update("last_login_at", now)

	return s.issueUserTokens(&user)
}

// LoginVendor authenticates against vendor_accounts. Sign-in is allowed in any
// vendor status; authorization for selling actions is checked per request, so
// a pending or suspended vendor can still see their own dashboard.
func (s *AuthService) LoginVendor(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var vendor models.VendorAccount
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := vendor.CheckPassword(req.Password); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return s.issueVendorTokens(&vendor)
}

// RefreshToken reissues tokens. The role claim routes the lookup to the
// correct credential store.
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	subject, role, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	principalID, err := uuid.Parse(subject)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if role == models.RoleVendor {
		var vendor models.VendorAccount
		if err := s.db.First(&vendor, principalID).Error; err != nil {
			return nil, apperrors.ErrUnauthorized
		}
		return s.issueVendorTokens(&vendor)
	}

	var user models.User
	if err := s.db.First(&user, principalID).Error; err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrForbidden
	}
	return s.issueUserTokens(&user)
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueUserTokens(user *models.User) (*AuthResponse, error) {
	role := models.RoleCustomer
	if user.UserType == models.UserTypeAdmin {
		role = models.RoleAdmin
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Email, role, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, role, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		Role:         role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

func (s *AuthService) issueVendorTokens(vendor *models.VendorAccount) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(vendor.ID, vendor.Email, models.RoleVendor, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(vendor.ID, models.RoleVendor, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		Vendor:       vendor,
		Role:         models.RoleVendor,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
