package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"storefront-api/internal/models"
)

// Claims are the identity fields carried by an access token. They are trusted
// as-is for the lifetime of a request; the user record is not re-fetched, so
// a role change only takes effect once a new token is issued.
type Claims struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens with a shared HMAC secret.
// Tokens carry no expiry, matching the session model this API exposes.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) CreateAccessToken(user *models.User) (string, error) {
	claims := &Claims{
		ID:      user.ID.Hex(),
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) ParseToken(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
