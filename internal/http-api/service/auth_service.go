package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mediareview/internal/auth"
	"mediareview/internal/http-api/models"
	"mediareview/internal/http-api/repository"

	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// bcrypt rejects longer passwords
const maxPasswordBytes = 72

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger

	// digest compared against when the email is unknown, so a miss costs
	// about as much as a wrong password
	dummyDigest string
}

func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, logger *slog.Logger) AuthService {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		logger.Warn("could not precompute dummy password digest", "error", err)
	}
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		validate:    validator.New(),
		logger:      logger,
		dummyDigest: dummy,
	}
}

// normalizeEmail makes email uniqueness case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. The only expected failure besides bad input is
// ErrDuplicateEmail, raised by the store's unique index on email.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, invalid("name", "is required")
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, invalid("email", "must be a valid email address")
	}
	if password == "" {
		return nil, invalid("password", "is required")
	}
	if len(password) > maxPasswordBytes {
		return nil, invalid("password", "must be at most %d bytes", maxPasswordBytes)
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
