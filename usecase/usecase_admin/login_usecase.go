package usecase_admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
	"github.com/manhva-oppa/oppa-blog/domain/domain_blog/blog_models"
	"github.com/manhva-oppa/oppa-blog/internal/tokenutil"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type loginUsecase struct {
	adminRepo   domain_admin.AdminRepository
	secret      string
	expiryHours int
	timeout     time.Duration
}

func NewLoginUsecase(adminRepo domain_admin.AdminRepository, secret string, expiryHours int, timeout time.Duration) domain_admin.LoginUsecase {
	return &loginUsecase{
		adminRepo:   adminRepo,
		secret:      secret,
		expiryHours: expiryHours,
		timeout:     timeout,
	}
}

// Login answers ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (lu *loginUsecase) Login(ctx context.Context, request domain_admin.LoginRequest) (domain_admin.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.timeout)
	defer cancel()

	admin, err := lu.adminRepo.GetByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		return domain_admin.LoginResponse{}, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return domain_admin.LoginResponse{}, blog_models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password)); err != nil {
		return domain_admin.LoginResponse{}, blog_models.ErrInvalidCredentials
	}

	accessToken, err := tokenutil.CreateAccessToken(admin, lu.secret, lu.expiryHours)
	if err != nil {
		return domain_admin.LoginResponse{}, err
	}
	return domain_admin.LoginResponse{AccessToken: accessToken}, nil
}

func (lu *loginUsecase) IsAdmin(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.timeout)
	defer cancel()

	admin, err := lu.adminRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	return admin != nil, nil
}

func (lu *loginUsecase) CreateAdmin(ctx context.Context, name, email, password string) (*domain_admin.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	ctx, cancel := context.WithTimeout(ctx, lu.timeout)
	defer cancel()

	existing, err := lu.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("admin %s already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain_admin.Admin{
		UserID:   uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := lu.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}
