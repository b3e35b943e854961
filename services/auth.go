package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
	"github.com/pushkarbw/sample-e-com-sub003/models"
	"github.com/pushkarbw/sample-e-com-sub003/repository"
	"github.com/pushkarbw/sample-e-com-sub003/utils"
)

// AuthService handles signup, login and token revocation. Revoked tokens
// live in process memory, matching the storage model of the rest of the
// app.
type AuthService struct {
	users repository.UserRepository

	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewAuthService builds an AuthService.
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{
		users:   users,
		revoked: make(map[string]struct{}),
	}
}

// SignupInput is the request body of a signup.
type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Credentials is the request body of a login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by signup and login: a signed token plus the
// user it identifies.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a new account and returns a token for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.Validation("a valid email is required")
	}
	if len(in.Password) < 6 {
		return nil, errs.Validation("password must be at least 6 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errs.Validation("an account with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(creds.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, errs.Unauthorized("invalid email or password")
	}
	return s.issue(user)
}

// Profile returns the account for an authenticated user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Logout revokes a token. Revocation is consulted by the auth middleware
// on every request.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
}

// IsRevoked reports whether a token has been revoked.
func (s *AuthService) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	sanitized := *user
	sanitized.Password = ""
	return &AuthResult{Token: token, User: &sanitized}, nil
}
