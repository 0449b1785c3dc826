package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Priya1724/RealEstateFinal/internal/apperr"
	"github.com/Priya1724/RealEstateFinal/internal/auth"
	"github.com/Priya1724/RealEstateFinal/internal/model"
	"github.com/Priya1724/RealEstateFinal/internal/repository"
)

// AuthResult is a signed session token plus the authenticated user.
type AuthResult struct {
	Token string
	User  *model.User
}

// AuthService handles registration, login and the admin bootstrap.
type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(ur *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: ur, tokens: tokens}
}

// Register creates a CUSTOMER account and signs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("AuthService.Register: %w", err)
	}
	if exists {
		return nil, apperr.BadRequest("Email is already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("AuthService.Register: hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.BadRequest("Email is already in use")
		}
		return nil, fmt.Errorf("AuthService.Register: %w", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("AuthService.Register: issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("AuthService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("AuthService.Login: issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// EnsureAdmin guarantees the bootstrap ADMIN account exists. Safe to run on
// every start.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("AuthService.EnsureAdmin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("AuthService.EnsureAdmin: hash password: %w", err)
	}

	admin := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		// Another instance may have won the race; the account exists either way.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil
		}
		return fmt.Errorf("AuthService.EnsureAdmin: %w", err)
	}
	return nil
}
