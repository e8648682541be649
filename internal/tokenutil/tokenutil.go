package tokenutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/manhva-oppa/oppa-blog/domain/domain_admin"
)

var ErrInvalidToken = errors.New("invalid token")

// CreateAccessToken signs an HS256 token for admin valid for expiry hours.
// The admin's UserID travels in the "id" claim.
func CreateAccessToken(admin *domain_admin.Admin, secret string, expiry int) (string, error) {
	now := time.Now()
	claims := &domain_admin.JwtCustomClaims{
		Name: admin.Name,
		ID:   admin.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiry) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return t, nil
}

func parse(requestToken string, secret string) (*domain_admin.JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(requestToken, &domain_admin.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain_admin.JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func IsAuthorized(requestToken string, secret string) (bool, error) {
	if _, err := parse(requestToken, secret); err != nil {
		return false, err
	}
	return true, nil
}

func ExtractIDFromToken(requestToken string, secret string) (string, error) {
	claims, err := parse(requestToken, secret)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}
	return claims.ID, nil
}
