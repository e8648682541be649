package domain_admin

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is an account allowed to trigger generation and edit the catalog.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type JwtCustomClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	// GetByUserID returns (nil, nil) for unknown users.
	GetByUserID(ctx context.Context, userID string) (*Admin, error)
}

type LoginUsecase interface {
	Login(ctx context.Context, request LoginRequest) (LoginResponse, error)
	// IsAdmin reports whether userID still belongs to an admin account.
	IsAdmin(ctx context.Context, userID string) (bool, error)
	// CreateAdmin hashes password and assigns a fresh user id.
	CreateAdmin(ctx context.Context, name, email, password string) (*Admin, error)
}
