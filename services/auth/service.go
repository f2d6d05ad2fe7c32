package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/models/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)

// UserStore is the subset of the user repository auth needs.
type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
}

type Service struct {
	users  UserStore
	tokens *TokenManager
}

func NewService(users UserStore, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Position  string
	Age       *int
	Phone     string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// Register creates an employee account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	username := strings.TrimSpace(in.Username)
	if !usernamePattern.MatchString(username) {
		return nil, errs.Validation("username must be 3-64 letters, digits, dots, dashes or underscores")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, errs.Validation("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		Uuid:         uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         constants.RoleEmployee,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Position:     strings.TrimSpace(in.Position),
		Age:          in.Age,
		Phone:        in.Phone,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Validation("username is already taken")
		}
		return nil, err
	}
	return u, nil
}

// Login checks credentials. Unknown users, inactive users and wrong
// passwords all return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		CheckPassword(string(dummyHash), password)
		return nil, errs.ErrInvalidCredentials
	}
	if !CheckPassword(u.PasswordHash, password) || !u.CanLogin() {
		return nil, errs.ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expires, User: u}, nil
}

// Me loads the current user; deactivated accounts lose access immediately.
func (s *Service) Me(ctx context.Context, userID uint) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	if !u.CanLogin() {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}

// Tokens exposes the token manager to the auth middleware.
func (s *Service) Tokens() *TokenManager {
	return s.tokens
}
