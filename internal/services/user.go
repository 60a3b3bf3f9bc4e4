package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/models"
)

const bcryptCost = 10

// UserStore is the account persistence surface.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, id, hashed string) error
	SetAdmin(ctx context.Context, id string) error
}

// TokenIssuer mints an access token for an authenticated user.
type TokenIssuer interface {
	CreateAccessToken(user *models.User) (string, error)
}

// Notifier delivers a notification email without blocking the caller.
type Notifier interface {
	Send(to, subject, body string)
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobileNo"`
	Password  string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService handles registration, login, password changes and role
// elevation.
type UserService struct {
	users  UserStore
	tokens TokenIssuer
	notify Notifier
}

func NewUserService(users UserStore, tokens TokenIssuer, notify Notifier) *UserService {
	return &UserService{users: users, tokens: tokens, notify: notify}
}

// Register creates an account. The password is stored only as a bcrypt hash.
// The welcome email is fire-and-forget; its outcome does not affect the
// result.
func (s *UserService) Register(ctx context.Context, in RegisterInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.MobileNo == "" || in.Password == "" {
		return models.ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return models.ErrInvalidEmail
	}
	if len(in.MobileNo) != 11 {
		return models.ErrInvalidMobile
	}
	if len(in.Password) < 8 {
		return models.ErrShortPassword
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		MobileNo:  in.MobileNo,
		Password:  string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.notify.Send(in.Email,
		"Account Created for E-Commerce API",
		"Your account for E-Commerce API has been successfully created")
	return nil
}

// Login verifies the credentials and returns a new access token.
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		return "", models.ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return "", models.ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return "", models.ErrPasswordMismatch
	}

	return s.tokens.CreateAccessToken(user)
}

// Details fetches the acting user's own record. The password hash is excluded
// from serialization by the model.
func (s *UserService) Details(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ListAll returns every registered account.
func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// PromoteToAdmin elevates a user. Elevating an admin again is a conflict.
func (s *UserService) PromoteToAdmin(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, models.ErrAlreadyAdmin
	}

	if err := s.users.SetAdmin(ctx, userID); err != nil {
		return nil, err
	}
	user.IsAdmin = true
	return user, nil
}

// UpdatePassword re-hashes and stores the new password. The notification
// email never affects the outcome.
func (s *UserService) UpdatePassword(ctx context.Context, userID, email, password string) error {
	if password == "" {
		return models.ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return err
	}

	s.notify.Send(email,
		"Password Changed for E-Commerce API",
		"Your password for E-Commerce API has been successfully changed")
	return nil
}
