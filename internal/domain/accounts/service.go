package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shashavali-8524/health-care/internal/platform/auth"
)

var (
	// ErrUsernameTaken and ErrEmailTaken are surfaced as field errors on
	// registration.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response cannot be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo   UserRepository
	issuer *auth.Issuer
}

func NewService(repo UserRepository, issuer *auth.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Register creates a user with a bcrypt-hashed password. Uniqueness of
// username and email is enforced by the database constraints; the repo maps
// violations to ErrUsernameTaken / ErrEmailTaken.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{Username: username, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by email and password and issues a token pair. Unknown
// email and wrong password are indistinguishable to the caller; a dummy
// bcrypt comparison runs on unknown email so timing does not differ either.
func (s *Service) Login(ctx context.Context, email, password string) (*User, auth.TokenPair, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			auth.CheckPasswordDummy(password)
			return nil, auth.TokenPair{}, ErrInvalidCredentials
		}
		return nil, auth.TokenPair{}, fmt.Errorf("look up user: %w", err)
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, auth.TokenPair{}, ErrInvalidCredentials
	}

	tokens, err := s.issuer.IssueTokens(u.ID, u.Username)
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return u, tokens, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(refreshToken string) (string, error) {
	return s.issuer.Refresh(refreshToken)
}

// CurrentUser resolves the authenticated user's record by id. ErrNotFound
// means the token refers to a user that no longer exists.
func (s *Service) CurrentUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
